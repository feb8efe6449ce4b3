package rtnl

import (
	"context"
	"testing"

	"github.com/mdlayher/netlink"
	"golang.org/x/sys/unix"
)

func TestDecodeEvent(t *testing.T) {
	link := append(marshalIfInfomsg(unix.AF_UNSPEC, 4, unix.IFF_UP), mustEncode(t, func(ae *netlink.AttributeEncoder) {
		ae.String(unix.IFLA_IFNAME, "eth2")
	})...)

	ev, ok, err := decodeEvent(netlink.Message{
		Header: netlink.Header{Type: unix.RTM_NEWLINK},
		Data:   link,
	})
	if err != nil {
		t.Fatalf("decodeEvent: %v", err)
	}
	if !ok {
		t.Fatal("expected link event to be decoded")
	}
	if ev.Type != unix.RTM_NEWLINK {
		t.Errorf("type was incorrect, got: %d, expected: %d", ev.Type, unix.RTM_NEWLINK)
	}
	if ev.Link == nil || ev.Link.Name != "eth2" {
		t.Errorf("link was incorrect, got: %+v", ev.Link)
	}
	if ev.Neigh != nil || ev.Routes != nil {
		t.Error("unrelated event fields were populated")
	}
}

func TestDecodeEventUnsupported(t *testing.T) {
	_, ok, err := decodeEvent(netlink.Message{
		Header: netlink.Header{Type: unix.RTM_NEWADDR},
	})
	if err != nil {
		t.Fatalf("decodeEvent: %v", err)
	}
	if ok {
		t.Error("expected RTM_NEWADDR to be skipped")
	}
}

func TestMonitorUnsupportedGroup(t *testing.T) {
	err := Monitor(context.Background(), func(Event) int { return 0 }, unix.RTNLGRP_IPV4_IFADDR)
	if err == nil {
		t.Error("expected error for unsupported group, got nil")
	}
}
