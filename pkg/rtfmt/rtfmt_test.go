package rtfmt

import (
	"net"
	"testing"

	"golang.org/x/sys/unix"

	"github.com/x-way/netlink-dump/pkg/rtnl"
)

func TestLink(t *testing.T) {
	tables := []struct {
		link     rtnl.Link
		expected string
	}{
		{rtnl.Link{Index: 1, Name: "lo", Up: true, MTU: 65536}, "1: lo state UP mtu 65536"},
		{rtnl.Link{Index: 2, Name: "eth0", Up: true, MTU: 1500, HWAddr: net.HardwareAddr{0x52, 0x54, 0x00, 0x12, 0x34, 0x56}}, "2: eth0 state UP mtu 1500 lladdr 52:54:00:12:34:56"},
		{rtnl.Link{Index: 3, Name: "eth1", Master: 4}, "3: eth1 state DOWN master 4"},
		{rtnl.Link{Index: 5, Name: "vrf-blue", Up: true, Kind: "vrf", VRFTable: 10}, "5: vrf-blue state UP kind vrf table 10"},
		{rtnl.Link{Index: 6, Name: "dummy0", Kind: "dummy"}, "6: dummy0 state DOWN kind dummy"},
	}

	for _, table := range tables {
		if got := Link(table.link); got != table.expected {
			t.Errorf("Link was incorrect, got: '%s', expected: '%s'.", got, table.expected)
		}
	}
}

func TestRoute(t *testing.T) {
	tables := []struct {
		route    rtnl.Route
		expected string
	}{
		{
			rtnl.Route{Family: unix.AF_INET, Dst: net.IP{10, 1, 2, 0}, DstLen: 24, Gateway: net.IP{10, 1, 2, 1}, Ifindex: 2, Table: 254, Protocol: unix.RTPROT_STATIC, Scope: unix.RT_SCOPE_UNIVERSE, Type: unix.RTN_UNICAST, Metric: 100},
			"10.1.2.0/24 via 10.1.2.1 dev 2 table 254 proto static scope global metric 100",
		},
		{
			rtnl.Route{Family: unix.AF_INET, Gateway: net.IP{192, 168, 0, 1}, Ifindex: 2, Table: 254, Protocol: unix.RTPROT_DHCP, Scope: unix.RT_SCOPE_UNIVERSE, Type: unix.RTN_UNICAST},
			"default via 192.168.0.1 dev 2 table 254 proto dhcp scope global",
		},
		{
			rtnl.Route{Family: unix.AF_INET, Dst: net.IP{10, 0, 0, 0}, DstLen: 8, Table: 254, Protocol: unix.RTPROT_BOOT, Scope: unix.RT_SCOPE_UNIVERSE, Type: unix.RTN_BLACKHOLE},
			"blackhole 10.0.0.0/8 table 254 proto boot scope global",
		},
		{
			rtnl.Route{Family: unix.AF_INET, Dst: net.IP{192, 168, 1, 0}, DstLen: 24, Ifindex: 3, Table: 255, Protocol: unix.RTPROT_KERNEL, Scope: unix.RT_SCOPE_LINK, Type: unix.RTN_UNICAST},
			"192.168.1.0/24 dev 3 table 255 proto kernel scope link",
		},
	}

	for _, table := range tables {
		if got := Route(table.route); got != table.expected {
			t.Errorf("Route was incorrect, got: '%s', expected: '%s'.", got, table.expected)
		}
	}
}

func TestNeigh(t *testing.T) {
	tables := []struct {
		neigh    rtnl.Neigh
		expected string
	}{
		{
			rtnl.Neigh{Dst: net.IP{192, 168, 1, 1}, LLAddr: net.HardwareAddr{0x52, 0x54, 0x00, 0xaa, 0xbb, 0xcc}, Ifindex: 2, State: unix.NUD_REACHABLE},
			"192.168.1.1 lladdr 52:54:00:aa:bb:cc dev 2 REACHABLE",
		},
		{
			rtnl.Neigh{Dst: net.IP{192, 168, 1, 7}, Ifindex: 2, State: unix.NUD_FAILED},
			"192.168.1.7 dev 2 FAILED",
		},
		{
			rtnl.Neigh{Dst: net.IP{10, 0, 0, 1}, Ifindex: 3, State: unix.NUD_STALE, Flags: unix.NTF_ROUTER},
			"10.0.0.1 dev 3 STALE router",
		},
	}

	for _, table := range tables {
		if got := Neigh(table.neigh); got != table.expected {
			t.Errorf("Neigh was incorrect, got: '%s', expected: '%s'.", got, table.expected)
		}
	}
}

func TestEventName(t *testing.T) {
	tables := []struct {
		typ      uint16
		expected string
	}{
		{unix.RTM_NEWLINK, "NEWLINK"},
		{unix.RTM_DELROUTE, "DELROUTE"},
		{unix.RTM_NEWNEIGH, "NEWNEIGH"},
		{9999, "TYPE(9999)"},
	}
	for _, table := range tables {
		if got := EventName(table.typ); got != table.expected {
			t.Errorf("EventName was incorrect, got: '%s', expected: '%s'.", got, table.expected)
		}
	}
}
