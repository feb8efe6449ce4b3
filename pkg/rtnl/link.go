package rtnl

import (
	"errors"
	"fmt"
	"net"

	"github.com/mdlayher/netlink"
	"github.com/mdlayher/netlink/nlenc"
	"golang.org/x/sys/unix"
)

const sizeofIfInfomsg = 16

// Link is one entry from an RTM_GETLINK dump.
type Link struct {
	Index    int
	Name     string
	Up       bool
	MTU      uint32
	Master   int
	Peer     int
	HWAddr   net.HardwareAddr
	Kind     string
	VRFTable uint32
}

// LinkConfig describes a link to be created with LinkAdd.
type LinkConfig struct {
	Name     string
	Kind     string
	Up       bool
	Master   int
	VRFTable uint32
}

func marshalIfInfomsg(family uint8, index int32, flags uint32) []byte {
	b := make([]byte, sizeofIfInfomsg)
	b[0] = family
	nlenc.PutInt32(b[4:8], index)
	nlenc.PutUint32(b[8:12], flags)
	return b
}

func parseLink(data []byte) (Link, error) {
	if len(data) < sizeofIfInfomsg {
		return Link{}, fmt.Errorf("short ifinfomsg: %d bytes", len(data))
	}
	l := Link{
		Index: int(nlenc.Int32(data[4:8])),
		Up:    nlenc.Uint32(data[8:12])&unix.IFF_UP != 0,
	}
	ad, err := netlink.NewAttributeDecoder(data[sizeofIfInfomsg:])
	if err != nil {
		return Link{}, err
	}
	for ad.Next() {
		switch ad.Type() {
		case unix.IFLA_IFNAME:
			l.Name = ad.String()
		case unix.IFLA_MTU:
			l.MTU = ad.Uint32()
		case unix.IFLA_MASTER:
			l.Master = int(ad.Uint32())
		case unix.IFLA_LINK:
			l.Peer = int(ad.Uint32())
		case unix.IFLA_ADDRESS:
			l.HWAddr = net.HardwareAddr(ad.Bytes())
		case unix.IFLA_LINKINFO:
			ad.Nested(func(nad *netlink.AttributeDecoder) error {
				return parseLinkInfo(nad, &l)
			})
		}
	}
	return l, ad.Err()
}

// parseLinkInfo fills in Kind and, for kinds that carry extra attributes we
// care about, the contents of IFLA_INFO_DATA. The kind attribute may follow
// the data attribute, so data is kept aside until the nest is fully walked.
func parseLinkInfo(ad *netlink.AttributeDecoder, l *Link) error {
	var data []byte
	for ad.Next() {
		switch ad.Type() {
		case unix.IFLA_INFO_KIND:
			l.Kind = ad.String()
		case unix.IFLA_INFO_DATA:
			data = ad.Bytes()
		}
	}
	if err := ad.Err(); err != nil {
		return err
	}
	if l.Kind != "vrf" || data == nil {
		return nil
	}
	nad, err := netlink.NewAttributeDecoder(data)
	if err != nil {
		return err
	}
	for nad.Next() {
		if nad.Type() == unix.IFLA_VRF_TABLE {
			l.VRFTable = nad.Uint32()
		}
	}
	return nad.Err()
}

// Links dumps all network interfaces.
func (c *Conn) Links() ([]Link, error) {
	msgs, err := c.dump(unix.RTM_GETLINK, marshalIfInfomsg(unix.AF_UNSPEC, 0, 0))
	if err != nil {
		return nil, err
	}
	var links []Link
	for _, m := range msgs {
		if m.Header.Type != unix.RTM_NEWLINK {
			continue
		}
		l, err := parseLink(m.Data)
		if err != nil {
			return nil, err
		}
		links = append(links, l)
	}
	return links, nil
}

// LinkByName resolves an interface name to its ifindex. ErrNotFound is
// returned if no interface of that name exists.
func (c *Conn) LinkByName(name string) (int, error) {
	ae := netlink.NewAttributeEncoder()
	ae.String(unix.IFLA_IFNAME, name)
	attrs, err := ae.Encode()
	if err != nil {
		return 0, err
	}
	req := netlink.Message{
		Header: netlink.Header{
			Type:  unix.RTM_GETLINK,
			Flags: netlink.Request,
		},
		Data: append(marshalIfInfomsg(unix.AF_UNSPEC, 0, 0), attrs...),
	}
	msgs, err := c.c.Execute(req)
	if err != nil {
		if errors.Is(err, unix.ENODEV) {
			return 0, ErrNotFound
		}
		return 0, err
	}
	if len(msgs) == 0 {
		return 0, ErrNotFound
	}
	l, err := parseLink(msgs[0].Data)
	if err != nil {
		return 0, err
	}
	return l.Index, nil
}

func linkAttrs(cfg LinkConfig) ([]byte, error) {
	ae := netlink.NewAttributeEncoder()
	ae.String(unix.IFLA_IFNAME, cfg.Name)
	if cfg.Master != 0 {
		ae.Uint32(unix.IFLA_MASTER, uint32(cfg.Master))
	}
	if cfg.Kind != "" {
		ae.Nested(unix.IFLA_LINKINFO, func(nae *netlink.AttributeEncoder) error {
			nae.String(unix.IFLA_INFO_KIND, cfg.Kind)
			if cfg.Kind == "vrf" {
				nae.Nested(unix.IFLA_INFO_DATA, func(dae *netlink.AttributeEncoder) error {
					dae.Uint32(unix.IFLA_VRF_TABLE, cfg.VRFTable)
					return nil
				})
			}
			return nil
		})
	}
	return ae.Encode()
}

// LinkAdd creates a new link of the configured kind.
func (c *Conn) LinkAdd(cfg LinkConfig) error {
	var flags uint32
	if cfg.Up {
		flags = unix.IFF_UP
	}
	attrs, err := linkAttrs(cfg)
	if err != nil {
		return err
	}
	data := append(marshalIfInfomsg(unix.AF_UNSPEC, 0, flags), attrs...)
	_, err = c.transact(unix.RTM_NEWLINK, netlink.Create|netlink.Excl, data)
	return err
}

// LinkDel removes the link with the given ifindex.
func (c *Conn) LinkDel(index int) error {
	_, err := c.transact(unix.RTM_DELLINK, 0, marshalIfInfomsg(unix.AF_UNSPEC, int32(index), 0))
	return err
}
