// Package ctfmt renders conntrack events as single text lines
package ctfmt

import (
	"fmt"
	"strings"

	conntrack "github.com/florianl/go-conntrack"
)

// Format returns a textual representation of the attributes of a connection
// as delivered by a conntrack event subscription.
func Format(c conntrack.Con) string {
	var attrs []string
	if c.Origin != nil {
		attrs = append(attrs, fmt.Sprintf("orig=%s", formatTuple(*c.Origin)))
	}
	if c.Reply != nil {
		attrs = append(attrs, fmt.Sprintf("reply=%s", formatTuple(*c.Reply)))
	}
	if c.ProtoInfo != nil && c.ProtoInfo.TCP != nil && c.ProtoInfo.TCP.State != nil {
		attrs = append(attrs, fmt.Sprintf("tcpstate=%s", getTCPState(*c.ProtoInfo.TCP.State)))
	}
	if c.Mark != nil {
		attrs = append(attrs, fmt.Sprintf("mark=0x%x", *c.Mark))
	}
	if c.Timeout != nil {
		attrs = append(attrs, fmt.Sprintf("timeout=%ds", *c.Timeout))
	}
	if c.ID != nil {
		attrs = append(attrs, fmt.Sprintf("id=0x%08x", *c.ID))
	}
	return strings.Join(attrs, ", ")
}

func formatTuple(t conntrack.IPTuple) string {
	var proto, src, dst string
	if t.Src != nil {
		src = t.Src.String()
	}
	if t.Dst != nil {
		dst = t.Dst.String()
	}
	if t.Proto != nil && t.Proto.Number != nil {
		switch *t.Proto.Number {
		case 6, 17:
			if *t.Proto.Number == 6 {
				proto = "tcp"
			} else {
				proto = "udp"
			}
			if t.Proto.SrcPort != nil {
				src = fmt.Sprintf("%s:%d", src, *t.Proto.SrcPort)
			}
			if t.Proto.DstPort != nil {
				dst = fmt.Sprintf("%s:%d", dst, *t.Proto.DstPort)
			}
		case 1:
			proto = "icmp"
			if t.Proto.IcmpType != nil {
				proto = fmt.Sprintf("%s/%d", proto, *t.Proto.IcmpType)
			}
		case 58:
			proto = "icmpv6"
			if t.Proto.Icmpv6Type != nil {
				proto = fmt.Sprintf("%s/%d", proto, *t.Proto.Icmpv6Type)
			}
		default:
			proto = fmt.Sprintf("proto(%d)", *t.Proto.Number)
		}
	}
	return fmt.Sprintf("%s:%s->%s", proto, src, dst)
}

var tcpstates = map[uint8]string{
	0: "NONE",
	1: "SYN_SENT",
	2: "SYN_RECV",
	3: "ESTABLISHED",
	4: "FIN_WAIT",
	5: "CLOSE_WAIT",
	6: "LAST_ACK",
	7: "TIME_WAIT",
	8: "CLOSE",
	9: "LISTEN",
}

func getTCPState(state uint8) string {
	if str, found := tcpstates[state]; found {
		return str
	}
	return fmt.Sprintf("UNKNOWN:0x%x", state)
}
