package main

import (
	"fmt"
	"time"

	"github.com/akeil/picnotes/internal/errors"
	"github.com/akeil/picnotes/pkg/remote"
	"github.com/akeil/picnotes/pkg/script"
)

func doSend(scriptPath, url string, browse bool) error {
	sc, err := script.ReadFile(scriptPath)
	if err != nil {
		return err
	}

	if url == "" {
		if !browse {
			return errors.NewConfigError("either --url or --browse is required")
		}
		fmt.Printf("%v looking for a server\n", ellipsis)
		urls, err := remote.Browse(3 * time.Second)
		if err != nil {
			return err
		}
		if len(urls) == 0 {
			return errors.NewNotFound("no server found")
		}
		url = urls[0]
	}

	c := remote.NewClient(url)
	err = c.Connect()
	if err != nil {
		return err
	}
	defer c.Close()

	fmt.Printf("%v send %d events to %q\n", ellipsis, len(sc.Events), url)
	state, err := c.SendAll(sc)
	if err != nil {
		fmt.Printf("%v %v\n", crossmark, err)
		return err
	}
	fmt.Printf("%v board has %d strokes, %d images, %d pictures\n", checkmark, state.Strokes, state.Images, state.Pictures)
	return nil
}
