package rtnl

import (
	"net"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/mdlayher/netlink"
	"github.com/mdlayher/netlink/nlenc"
	"golang.org/x/sys/unix"
)

func ndMsgBytes(family uint8, ifindex int32, state uint16, flags, typ uint8) []byte {
	b := make([]byte, sizeofNdMsg)
	b[0] = family
	nlenc.PutInt32(b[4:8], ifindex)
	nlenc.PutUint16(b[8:10], state)
	b[10] = flags
	b[11] = typ
	return b
}

func TestParseNeigh(t *testing.T) {
	hw := net.HardwareAddr{0x52, 0x54, 0x00, 0xaa, 0xbb, 0xcc}
	header := ndMsgBytes(unix.AF_INET, 2, unix.NUD_REACHABLE, unix.NTF_ROUTER, unix.RTN_UNICAST)
	attrs := mustEncode(t, func(ae *netlink.AttributeEncoder) {
		ae.Bytes(unix.NDA_DST, net.IP{192, 168, 1, 1})
		ae.Bytes(unix.NDA_LLADDR, hw)
	})

	got, err := parseNeigh(append(header, attrs...))
	if err != nil {
		t.Fatalf("parseNeigh: %v", err)
	}
	expected := Neigh{
		Ifindex: 2,
		State:   unix.NUD_REACHABLE,
		Flags:   unix.NTF_ROUTER,
		Type:    unix.RTN_UNICAST,
		Dst:     net.IP{192, 168, 1, 1},
		LLAddr:  hw,
	}
	if diff := cmp.Diff(expected, got); diff != "" {
		t.Errorf("unexpected neigh (-want +got):\n%s", diff)
	}
}

func TestParseNeighShort(t *testing.T) {
	if _, err := parseNeigh(make([]byte, sizeofNdMsg-1)); err == nil {
		t.Error("expected error for truncated ndmsg, got nil")
	}
}
