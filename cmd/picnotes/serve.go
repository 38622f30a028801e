package main

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/akeil/picnotes/internal/logging"
	"github.com/akeil/picnotes/pkg/remote"
)

func doServe(s settings, listen string, announce bool, snapDir string) error {
	b, err := setupBoard(s)
	if err != nil {
		return err
	}

	ln, err := net.Listen("tcp", listen)
	if err != nil {
		return err
	}

	srv := remote.NewServer(b)
	mux := http.NewServeMux()
	mux.Handle("/events", srv)
	httpSrv := &http.Server{Handler: mux}

	if announce {
		port := ln.Addr().(*net.TCPAddr).Port
		ad, err := remote.Announce("", port)
		if err != nil {
			ln.Close()
			return err
		}
		defer ad.Shutdown()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Printf("%v listening on ws://%v/events\n", ellipsis, ln.Addr())
	group, ctx := errgroup.WithContext(ctx)
	group.Go(func() error {
		err := srv.Run(ctx)
		if err == context.Canceled {
			return nil
		}
		return err
	})
	group.Go(func() error {
		err := httpSrv.Serve(ln)
		if err == http.ErrServerClosed {
			return nil
		}
		return err
	})
	group.Go(func() error {
		<-ctx.Done()
		shutdown, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return httpSrv.Shutdown(shutdown)
	})

	err = group.Wait()
	if err != nil {
		logging.Error("server: %v", err)
		return err
	}
	fmt.Printf("%v server stopped\n", checkmark)

	// the event loop has stopped, the board is no longer touched
	if snapDir != "" {
		return saveSnapshot(s, b, snapDir, "board-"+strconv.FormatInt(time.Now().Unix(), 10), true)
	}
	return nil
}
