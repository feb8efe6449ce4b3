// Package rtfmt renders rtnetlink dump entries and events as single text lines
package rtfmt

import (
	"fmt"

	"golang.org/x/sys/unix"

	"github.com/x-way/netlink-dump/pkg/rtnl"
)

// Link renders one link entry in the style of ip-link(8) output.
func Link(l rtnl.Link) string {
	state := "DOWN"
	if l.Up {
		state = "UP"
	}
	out := fmt.Sprintf("%d: %s state %s", l.Index, l.Name, state)
	if l.MTU != 0 {
		out += fmt.Sprintf(" mtu %d", l.MTU)
	}
	if l.HWAddr != nil {
		out += fmt.Sprintf(" lladdr %s", l.HWAddr)
	}
	if l.Master != 0 {
		out += fmt.Sprintf(" master %d", l.Master)
	}
	if l.Kind != "" {
		out += fmt.Sprintf(" kind %s", l.Kind)
	}
	if l.Kind == "vrf" {
		out += fmt.Sprintf(" table %d", l.VRFTable)
	}
	return out
}

// Route renders one route entry in the style of ip-route(8) output.
func Route(r rtnl.Route) string {
	out := "default"
	if r.Dst != nil {
		out = fmt.Sprintf("%s/%d", r.Dst, r.DstLen)
	}
	if r.Type != unix.RTN_UNICAST {
		out = getRouteType(r.Type) + " " + out
	}
	if r.Gateway != nil {
		out += fmt.Sprintf(" via %s", r.Gateway)
	}
	if r.Ifindex != 0 {
		out += fmt.Sprintf(" dev %d", r.Ifindex)
	}
	out += fmt.Sprintf(" table %d proto %s scope %s", r.Table, getRouteProto(r.Protocol), getRouteScope(r.Scope))
	if r.Metric != 0 {
		out += fmt.Sprintf(" metric %d", r.Metric)
	}
	return out
}

// Neigh renders one neighbour cache entry in the style of ip-neighbour(8) output.
func Neigh(n rtnl.Neigh) string {
	out := ""
	if n.Dst != nil {
		out = n.Dst.String()
	}
	if n.LLAddr != nil {
		out += fmt.Sprintf(" lladdr %s", n.LLAddr)
	}
	out += fmt.Sprintf(" dev %d %s", n.Ifindex, getNeighState(n.State))
	if n.Flags&unix.NTF_ROUTER != 0 {
		out += " router"
	}
	if n.Flags&unix.NTF_PROXY != 0 {
		out += " proxy"
	}
	return out
}

// EventName returns a short name for the RTM_* type of a monitor event.
func EventName(typ uint16) string {
	names := map[uint16]string{
		unix.RTM_NEWLINK:  "NEWLINK",
		unix.RTM_DELLINK:  "DELLINK",
		unix.RTM_NEWNEIGH: "NEWNEIGH",
		unix.RTM_DELNEIGH: "DELNEIGH",
		unix.RTM_NEWROUTE: "NEWROUTE",
		unix.RTM_DELROUTE: "DELROUTE",
	}
	if name, ok := names[typ]; ok {
		return name
	}
	return fmt.Sprintf("TYPE(%d)", typ)
}

func getNeighState(state uint16) string {
	states := map[uint16]string{
		unix.NUD_NONE:       "NONE",
		unix.NUD_INCOMPLETE: "INCOMPLETE",
		unix.NUD_REACHABLE:  "REACHABLE",
		unix.NUD_STALE:      "STALE",
		unix.NUD_DELAY:      "DELAY",
		unix.NUD_PROBE:      "PROBE",
		unix.NUD_FAILED:     "FAILED",
		unix.NUD_NOARP:      "NOARP",
		unix.NUD_PERMANENT:  "PERMANENT",
	}
	if name, ok := states[state]; ok {
		return name
	}
	return fmt.Sprintf("STATE(%d)", state)
}

func getRouteProto(proto uint8) string {
	protos := map[uint8]string{
		unix.RTPROT_UNSPEC:   "unspec",
		unix.RTPROT_REDIRECT: "redirect",
		unix.RTPROT_KERNEL:   "kernel",
		unix.RTPROT_BOOT:     "boot",
		unix.RTPROT_STATIC:   "static",
		unix.RTPROT_DHCP:     "dhcp",
		unix.RTPROT_RA:       "ra",
	}
	if name, ok := protos[proto]; ok {
		return name
	}
	return fmt.Sprintf("%d", proto)
}

func getRouteScope(scope uint8) string {
	scopes := map[uint8]string{
		unix.RT_SCOPE_UNIVERSE: "global",
		unix.RT_SCOPE_SITE:     "site",
		unix.RT_SCOPE_LINK:     "link",
		unix.RT_SCOPE_HOST:     "host",
		unix.RT_SCOPE_NOWHERE:  "nowhere",
	}
	if name, ok := scopes[scope]; ok {
		return name
	}
	return fmt.Sprintf("%d", scope)
}

func getRouteType(typ uint8) string {
	types := map[uint8]string{
		unix.RTN_UNSPEC:      "unspec",
		unix.RTN_UNICAST:     "unicast",
		unix.RTN_LOCAL:       "local",
		unix.RTN_BROADCAST:   "broadcast",
		unix.RTN_ANYCAST:     "anycast",
		unix.RTN_MULTICAST:   "multicast",
		unix.RTN_BLACKHOLE:   "blackhole",
		unix.RTN_UNREACHABLE: "unreachable",
		unix.RTN_PROHIBIT:    "prohibit",
		unix.RTN_THROW:       "throw",
		unix.RTN_NAT:         "nat",
	}
	if name, ok := types[typ]; ok {
		return name
	}
	return fmt.Sprintf("%d", typ)
}
