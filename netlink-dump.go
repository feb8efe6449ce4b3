package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	conntrack "github.com/florianl/go-conntrack"
	"golang.org/x/sys/unix"

	"github.com/x-way/netlink-dump/pkg/ctfmt"
	"github.com/x-way/netlink-dump/pkg/rtfmt"
	"github.com/x-way/netlink-dump/pkg/rtnl"
)

var (
	monitorMode   = flag.Bool("m", false, "monitor rtnetlink events instead of dumping")
	ctEvents      = flag.Bool("c", false, "also show conntrack events while monitoring")
	monitorLength = flag.Duration("t", 10*time.Second, "how long to run the monitor")
	familyName    = flag.String("f", "", "address family (inet, inet6, bridge)")
	routeTable    = flag.Int("T", 0, "route table to show (0 = all)")
)

func main() {

	flag.Parse()

	if *monitorMode {
		runMonitor()
		return
	}
	runDump()
}

func parseFamily(name string) (uint8, error) {
	switch name {
	case "":
		return unix.AF_UNSPEC, nil
	case "inet":
		return unix.AF_INET, nil
	case "inet6":
		return unix.AF_INET6, nil
	case "bridge":
		return unix.AF_BRIDGE, nil
	}
	return 0, fmt.Errorf("unknown address family %q", name)
}

func runDump() {
	family, err := parseFamily(*familyName)
	if err != nil {
		log.Fatal(err)
	}

	conn, err := rtnl.Dial()
	if err != nil {
		log.Fatal(err)
	}
	defer conn.Close()

	links, err := conn.Links()
	if err != nil {
		log.Fatal(err)
	}
	for _, l := range links {
		fmt.Println(rtfmt.Link(l))
	}

	routes, err := conn.Routes(rtnl.RouteFilter{Family: family, Table: uint32(*routeTable)})
	if err != nil {
		log.Fatal(err)
	}
	for _, r := range routes {
		fmt.Println(rtfmt.Route(r))
	}

	neighs, err := conn.Neighbours(family)
	if err != nil {
		log.Fatal(err)
	}
	for _, n := range neighs {
		fmt.Println(rtfmt.Neigh(n))
	}
}

func runMonitor() {
	ctx, cancel := context.WithTimeout(context.Background(), *monitorLength)
	defer cancel()

	if *ctEvents {
		nfct, err := conntrack.Open(&conntrack.Config{})
		if err != nil {
			log.Fatal(err)
		}
		defer nfct.Close()

		groups := conntrack.NetlinkCtNew | conntrack.NetlinkCtUpdate | conntrack.NetlinkCtDestroy
		err = nfct.Register(ctx, conntrack.Conntrack, groups, func(c conntrack.Con) int {
			fmt.Printf("%s %-8s %s\n", time.Now().Format("15:04:05.000000"), "CT", ctfmt.Format(c))
			return 0
		})
		if err != nil {
			log.Fatal(err)
		}
	}

	callback := func(ev rtnl.Event) int {
		printEvent(time.Now(), ev)
		return 0
	}

	if err := rtnl.Monitor(ctx, callback); err != nil {
		log.Fatal(err)
	}
}

func printEvent(ts time.Time, ev rtnl.Event) {
	stamp := ts.Format("15:04:05.000000")
	name := rtfmt.EventName(ev.Type)
	switch {
	case ev.Link != nil:
		fmt.Printf("%s %-8s %s\n", stamp, name, rtfmt.Link(*ev.Link))
	case ev.Neigh != nil:
		fmt.Printf("%s %-8s %s\n", stamp, name, rtfmt.Neigh(*ev.Neigh))
	default:
		for _, r := range ev.Routes {
			fmt.Printf("%s %-8s %s\n", stamp, name, rtfmt.Route(r))
		}
	}
}
