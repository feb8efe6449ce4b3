// Package rtnl is a small rtnetlink client. It covers the dump requests the
// netlink-dump tool needs (links, routes, neighbour cache), link creation and
// deletion, and multicast event monitoring.
package rtnl

import (
	"errors"
	"fmt"

	"github.com/mdlayher/netlink"
	"golang.org/x/sys/unix"
)

// ErrNotFound is returned by lookups for objects the kernel does not know.
var ErrNotFound = errors.New("rtnl: not found")

// Conn is a connection to the rtnetlink subsystem.
type Conn struct {
	c *netlink.Conn
}

// Dial opens a NETLINK_ROUTE socket.
func Dial() (*Conn, error) {
	c, err := netlink.Dial(unix.NETLINK_ROUTE, nil)
	if err != nil {
		return nil, fmt.Errorf("dial netlink route: %w", err)
	}
	return &Conn{c: c}, nil
}

// Close releases the underlying socket.
func (c *Conn) Close() error {
	return c.c.Close()
}

func (c *Conn) dump(typ uint16, data []byte) ([]netlink.Message, error) {
	req := netlink.Message{
		Header: netlink.Header{
			Type:  netlink.HeaderType(typ),
			Flags: netlink.Request | netlink.Dump,
		},
		Data: data,
	}
	return c.c.Execute(req)
}

func (c *Conn) transact(typ uint16, flags netlink.HeaderFlags, data []byte) ([]netlink.Message, error) {
	req := netlink.Message{
		Header: netlink.Header{
			Type:  netlink.HeaderType(typ),
			Flags: netlink.Request | netlink.Acknowledge | flags,
		},
		Data: data,
	}
	return c.c.Execute(req)
}
