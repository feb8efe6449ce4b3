package rtnl

import (
	"fmt"
	"net"

	"github.com/mdlayher/netlink"
	"github.com/mdlayher/netlink/nlenc"
	"golang.org/x/sys/unix"
)

const (
	sizeofRtMsg     = 12
	sizeofRtNexthop = 8
)

// Route is one entry from an RTM_GETROUTE dump. A multipath route produces
// one Route per nexthop, each carrying the shared rtmsg fields.
type Route struct {
	Family   uint8
	DstLen   uint8
	Table    uint32
	Protocol uint8
	Scope    uint8
	Type     uint8
	Dst      net.IP
	Gateway  net.IP
	Ifindex  int
	Metric   uint32
}

// RouteFilter narrows a route dump. Zero-valued fields match everything.
type RouteFilter struct {
	Family   uint8
	Table    uint32
	Protocol uint8
	Scope    uint8
	Type     uint8
}

func (f RouteFilter) match(r Route) bool {
	if f.Table != 0 && r.Table != f.Table {
		return false
	}
	if f.Protocol != 0 && r.Protocol != f.Protocol {
		return false
	}
	if f.Scope != 0 && r.Scope != f.Scope {
		return false
	}
	if f.Type != 0 && r.Type != f.Type {
		return false
	}
	return true
}

func marshalRtMsg(family uint8) []byte {
	b := make([]byte, sizeofRtMsg)
	b[0] = family
	return b
}

// parseRoute flattens RTA_MULTIPATH the way the route dump consumers expect:
// a route with N nexthops becomes N routes differing in gateway and ifindex.
func parseRoute(data []byte) ([]Route, error) {
	if len(data) < sizeofRtMsg {
		return nil, fmt.Errorf("short rtmsg: %d bytes", len(data))
	}
	r := Route{
		Family:   data[0],
		DstLen:   data[1],
		Table:    uint32(data[4]),
		Protocol: data[5],
		Scope:    data[6],
		Type:     data[7],
	}
	ad, err := netlink.NewAttributeDecoder(data[sizeofRtMsg:])
	if err != nil {
		return nil, err
	}
	var nhops []Route
	for ad.Next() {
		switch ad.Type() {
		case unix.RTA_DST:
			r.Dst = net.IP(ad.Bytes())
		case unix.RTA_GATEWAY:
			r.Gateway = net.IP(ad.Bytes())
		case unix.RTA_OIF:
			r.Ifindex = int(ad.Uint32())
		case unix.RTA_PRIORITY:
			r.Metric = ad.Uint32()
		case unix.RTA_TABLE:
			r.Table = ad.Uint32()
		case unix.RTA_MULTIPATH:
			hops, err := parseNexthops(ad.Bytes())
			if err != nil {
				return nil, err
			}
			nhops = hops
		}
	}
	if err := ad.Err(); err != nil {
		return nil, err
	}
	if nhops == nil {
		return []Route{r}, nil
	}
	routes := make([]Route, 0, len(nhops))
	for _, nh := range nhops {
		hop := r
		hop.Ifindex = nh.Ifindex
		hop.Gateway = nh.Gateway
		routes = append(routes, hop)
	}
	return routes, nil
}

func parseNexthops(data []byte) ([]Route, error) {
	var hops []Route
	for len(data) >= sizeofRtNexthop {
		nhlen := int(nlenc.Uint16(data[0:2]))
		if nhlen < sizeofRtNexthop || nhlen > len(data) {
			return nil, fmt.Errorf("bad rtnexthop length %d", nhlen)
		}
		hop := Route{Ifindex: int(nlenc.Int32(data[4:8]))}
		ad, err := netlink.NewAttributeDecoder(data[sizeofRtNexthop:nhlen])
		if err != nil {
			return nil, err
		}
		for ad.Next() {
			if ad.Type() == unix.RTA_GATEWAY {
				hop.Gateway = net.IP(ad.Bytes())
			}
		}
		if err := ad.Err(); err != nil {
			return nil, err
		}
		hops = append(hops, hop)
		data = data[nhlen:]
	}
	if len(data) != 0 {
		return nil, fmt.Errorf("trailing nexthop data: % x", data)
	}
	return hops, nil
}

// Routes dumps the routing tables, narrowed by the filter.
func (c *Conn) Routes(f RouteFilter) ([]Route, error) {
	msgs, err := c.dump(unix.RTM_GETROUTE, marshalRtMsg(f.Family))
	if err != nil {
		return nil, err
	}
	var routes []Route
	for _, m := range msgs {
		if m.Header.Type != unix.RTM_NEWROUTE {
			continue
		}
		rs, err := parseRoute(m.Data)
		if err != nil {
			return nil, err
		}
		for _, r := range rs {
			if f.match(r) {
				routes = append(routes, r)
			}
		}
	}
	return routes, nil
}
