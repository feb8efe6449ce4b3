package rtnl

import (
	"fmt"
	"net"

	"github.com/mdlayher/netlink"
	"github.com/mdlayher/netlink/nlenc"
	"golang.org/x/sys/unix"
)

const sizeofNdMsg = 12

// Neigh is one entry from an RTM_GETNEIGH dump.
type Neigh struct {
	Ifindex int
	State   uint16
	Flags   uint8
	Type    uint8
	Dst     net.IP
	LLAddr  net.HardwareAddr
}

func marshalNdMsg(family uint8, index int32) []byte {
	b := make([]byte, sizeofNdMsg)
	b[0] = family
	nlenc.PutInt32(b[4:8], index)
	return b
}

func parseNeigh(data []byte) (Neigh, error) {
	if len(data) < sizeofNdMsg {
		return Neigh{}, fmt.Errorf("short ndmsg: %d bytes", len(data))
	}
	n := Neigh{
		Ifindex: int(nlenc.Int32(data[4:8])),
		State:   nlenc.Uint16(data[8:10]),
		Flags:   data[10],
		Type:    data[11],
	}
	ad, err := netlink.NewAttributeDecoder(data[sizeofNdMsg:])
	if err != nil {
		return Neigh{}, err
	}
	for ad.Next() {
		switch ad.Type() {
		case unix.NDA_DST:
			n.Dst = net.IP(ad.Bytes())
		case unix.NDA_LLADDR:
			n.LLAddr = net.HardwareAddr(ad.Bytes())
		}
	}
	return n, ad.Err()
}

// Neighbours dumps the neighbour cache for the given address family.
// Use unix.AF_UNSPEC for all families or unix.AF_BRIDGE for the fdb.
func (c *Conn) Neighbours(family uint8) ([]Neigh, error) {
	msgs, err := c.dump(unix.RTM_GETNEIGH, marshalNdMsg(family, 0))
	if err != nil {
		return nil, err
	}
	var neighs []Neigh
	for _, m := range msgs {
		if m.Header.Type != unix.RTM_NEWNEIGH {
			continue
		}
		n, err := parseNeigh(m.Data)
		if err != nil {
			return nil, err
		}
		neighs = append(neighs, n)
	}
	return neighs, nil
}
