package api

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/footystats/afl-dashboard/dataset"
	"github.com/golang/glog"
	"golang.org/x/sync/errgroup"
)

type ServerOptions struct {
	Host                string
	Port                uint
	ShutdownGracePeriod time.Duration
	APIHandlerOptions
}

func (o ServerOptions) Addr() string {
	return net.JoinHostPort(o.Host, strconv.FormatUint(uint64(o.Port), 10))
}

// ListenAndServe serves the dashboard until ctx is done, then shuts the
// server down gracefully.
func ListenAndServe(ctx context.Context, opts ServerOptions, ds dataset.Accessor) error {
	srv := &http.Server{
		Addr:              opts.Addr(),
		Handler:           NewHandler(opts.APIHandlerOptions, ds),
		ReadHeaderTimeout: 10 * time.Second,
	}
	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		<-ctx.Done()
		shutCtx, cancel := context.WithTimeout(context.Background(), opts.ShutdownGracePeriod)
		defer cancel()
		if err := srv.Shutdown(shutCtx); err != nil {
			if closeErr := srv.Close(); closeErr != nil {
				err = fmt.Errorf("shutdownErr=%w closeErr=%q", err, closeErr)
			}
			return fmt.Errorf("api server shutdown error: %w", err)
		}
		return nil
	})
	eg.Go(func() error {
		glog.Infof("Listening for HTTP requests. addr=%q, apiRoot=%q", srv.Addr, opts.APIRoot)
		if err := srv.ListenAndServe(); err != http.ErrServerClosed {
			return fmt.Errorf("api server listen and serve error: %w", err)
		}
		return nil
	})
	return eg.Wait()
}
