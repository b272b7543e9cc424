package stats

import (
	"fmt"
	"strconv"
	"strings"
)

// Window is a number of most recent games. Overall covers every game.
type Window int

const Overall Window = 0

// Windows used by the summary and line tables, in display order.
var DefaultWindows = []Window{Overall, 3, 5, 10}

// Size is the number of rows the window covers out of n available.
func (w Window) Size(n int) int {
	if w <= Overall || int(w) > n {
		return n
	}
	return int(w)
}

// Label is the human readable name used in tables, e.g. "Last 5 Games".
func (w Window) Label() string {
	if w <= Overall {
		return "Overall"
	}
	return fmt.Sprintf("Last %d Games", int(w))
}

func (w Window) String() string {
	if w <= Overall {
		return "overall"
	}
	return "last" + strconv.Itoa(int(w))
}

func (w Window) MarshalText() ([]byte, error) {
	return []byte(w.String()), nil
}

func (w *Window) UnmarshalText(b []byte) error {
	str := strings.ToLower(string(b))
	if str == "overall" {
		*w = Overall
		return nil
	}
	num, err := strconv.Atoi(strings.TrimPrefix(str, "last"))
	if err != nil || num <= 0 {
		return fmt.Errorf("bad window %q", string(b))
	}
	*w = Window(num)
	return nil
}
