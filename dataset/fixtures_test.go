package dataset

var testHeader = []string{
	"Player", "Team", "Opponent", "Round", "Venue", "home_away", "win_lose_draw",
	"disposals", "kicks", "handballs", "marks", "tackles", "goals", "fantasy",
}

var testRecords = [][]string{
	{"Marcus Bontempelli", "Western Bulldogs", "Sydney", "1.0", "Marvel Stadium", "Home", "Win", "28", "16", "12", "5", "6", "2", "112"},
	{"Nick Daicos", "Collingwood", "Geelong", "1.0", "MCG", "Away", "Lose", "34", "22", "12", "7", "3", "1", "121"},
	{"Marcus Bontempelli", "Western Bulldogs", "Melbourne", "2.0", "MCG", "Away", "Lose", "22", "12", "10", "4", "8", "", "95"},
	{"", "", "", "", "", "", "", "", "", "", "", "", "", ""},
	{"Nick Daicos", "Collingwood", "Carlton", "", "MCG", "Home", "Win", "31", "20", "11", "6", "4", "0", "nan"},
	{"Marcus Bontempelli", "Western Bulldogs", "Essendon", "Opening", "Marvel Stadium", "Home", "Draw", "25", "15", "10", "6", "5", "3", "104"},
}
