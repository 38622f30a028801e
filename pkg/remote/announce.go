package remote

import (
	"fmt"
	"net"
	"os"
	"time"

	"github.com/hashicorp/mdns"

	"github.com/akeil/picnotes/internal/errors"
	"github.com/akeil/picnotes/internal/logging"
)

// ServiceType is the mDNS service type of the event server.
const ServiceType = "_picnotes._tcp"

// NewService describes an event server on the given port.
// An empty host uses the hostname of this machine; nil ips are looked up
// for the host.
func NewService(instance, host string, port int, ips []net.IP) (*mdns.MDNSService, error) {
	if instance == "" {
		h, err := os.Hostname()
		if err != nil {
			return nil, errors.Wrap(err, "could not get hostname")
		}
		instance = h
	}

	info := []string{"picnotes"}
	svc, err := mdns.NewMDNSService(instance, ServiceType, "", host, port, ips, info)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create mDNS service")
	}
	return svc, nil
}

// Announce advertises an event server on the local network.
// The returned server must be shut down to stop the announcement.
func Announce(instance string, port int) (*mdns.Server, error) {
	svc, err := NewService(instance, "", port, nil)
	if err != nil {
		return nil, err
	}

	server, err := mdns.NewServer(&mdns.Config{Zone: svc})
	if err != nil {
		return nil, errors.Wrap(err, "failed to start mDNS server")
	}
	logging.Info("Announce %q on port %d", svc.Instance, port)
	return server, nil
}

// Browse looks for event servers and returns their websocket URLs.
func Browse(timeout time.Duration) ([]string, error) {
	entries := make(chan *mdns.ServiceEntry, 8)
	var urls []string
	done := make(chan struct{})
	go func() {
		defer close(done)
		for e := range entries {
			if e.AddrV4 == nil || e.Port == 0 {
				continue
			}
			urls = append(urls, fmt.Sprintf("ws://%s:%d/events", e.AddrV4, e.Port))
		}
	}()

	params := mdns.DefaultParams(ServiceType)
	params.Entries = entries
	params.Timeout = timeout
	params.DisableIPv6 = true
	err := mdns.Query(params)
	close(entries)
	<-done
	if err != nil {
		return nil, errors.Wrap(err, "mDNS lookup")
	}
	return urls, nil
}
