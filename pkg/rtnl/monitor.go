package rtnl

import (
	"context"
	"fmt"

	"github.com/mdlayher/netlink"
	"golang.org/x/sys/unix"
)

// Event is one rtnetlink multicast notification. Type holds the RTM_* message
// type; exactly one of Link, Neigh or Routes is set, according to Type.
type Event struct {
	Type   uint16
	Link   *Link
	Neigh  *Neigh
	Routes []Route
}

var supportedGroups = map[uint32]struct{}{
	unix.RTNLGRP_LINK:       {},
	unix.RTNLGRP_NEIGH:      {},
	unix.RTNLGRP_IPV4_ROUTE: {},
	unix.RTNLGRP_IPV6_ROUTE: {},
}

func decodeEvent(m netlink.Message) (Event, bool, error) {
	ev := Event{Type: uint16(m.Header.Type)}
	switch m.Header.Type {
	case unix.RTM_NEWLINK, unix.RTM_DELLINK:
		l, err := parseLink(m.Data)
		if err != nil {
			return Event{}, false, err
		}
		ev.Link = &l
	case unix.RTM_NEWNEIGH, unix.RTM_DELNEIGH:
		n, err := parseNeigh(m.Data)
		if err != nil {
			return Event{}, false, err
		}
		ev.Neigh = &n
	case unix.RTM_NEWROUTE, unix.RTM_DELROUTE:
		rs, err := parseRoute(m.Data)
		if err != nil {
			return Event{}, false, err
		}
		ev.Routes = rs
	default:
		return Event{}, false, nil
	}
	return ev, true, nil
}

// Monitor subscribes to the given RTNLGRP_* groups (all supported groups if
// none are given) and calls fn for every decoded event until the context is
// done or fn returns non-zero.
func Monitor(ctx context.Context, fn func(Event) int, groups ...uint32) error {
	for _, g := range groups {
		if _, ok := supportedGroups[g]; !ok {
			return fmt.Errorf("unsupported group requested: %d", g)
		}
	}
	if len(groups) == 0 {
		for g := range supportedGroups {
			groups = append(groups, g)
		}
	}
	conn, err := netlink.Dial(unix.NETLINK_ROUTE, nil)
	if err != nil {
		return fmt.Errorf("dial netlink route: %w", err)
	}
	defer conn.Close()
	for _, g := range groups {
		if err := conn.JoinGroup(g); err != nil {
			return fmt.Errorf("join group %d: %w", g, err)
		}
	}

	// Closing the socket is the only way to interrupt Receive.
	go func() {
		<-ctx.Done()
		conn.Close()
	}()

	for {
		msgs, err := conn.Receive()
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return err
		}
		for _, m := range msgs {
			ev, ok, err := decodeEvent(m)
			if err != nil {
				return err
			}
			if !ok {
				continue
			}
			if fn(ev) != 0 {
				return nil
			}
		}
	}
}
