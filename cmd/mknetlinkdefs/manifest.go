package main

/*
#include <linux/if_link.h>
#include <linux/netlink.h>
#include <linux/genetlink.h>
#include <linux/rtnetlink.h>
#include <linux/neighbour.h>
*/
import "C"

// manifest is maintained by hand. Entries are grouped by the header that
// defines them; the order here is the output order.
var manifest = []entry{
	// linux/netlink.h
	{"NLMSG_NOOP", C.NLMSG_NOOP},
	{"NLMSG_ERROR", C.NLMSG_ERROR},
	{"NLMSG_DONE", C.NLMSG_DONE},
	{"NLMSG_OVERRUN", C.NLMSG_OVERRUN},
	{"NLMSG_MIN_TYPE", C.NLMSG_MIN_TYPE},
	{"NLM_F_REQUEST", C.NLM_F_REQUEST},
	{"NLM_F_MULTI", C.NLM_F_MULTI},
	{"NLM_F_ACK", C.NLM_F_ACK},
	{"NLM_F_ECHO", C.NLM_F_ECHO},
	{"NLM_F_ROOT", C.NLM_F_ROOT},
	{"NLM_F_MATCH", C.NLM_F_MATCH},
	{"NLM_F_ATOMIC", C.NLM_F_ATOMIC},
	{"NLM_F_DUMP", C.NLM_F_DUMP},
	{"NLM_F_REPLACE", C.NLM_F_REPLACE},
	{"NLM_F_EXCL", C.NLM_F_EXCL},
	{"NLM_F_CREATE", C.NLM_F_CREATE},
	{"NLM_F_APPEND", C.NLM_F_APPEND},
	{"NETLINK_ROUTE", C.NETLINK_ROUTE},
	{"NETLINK_NETFILTER", C.NETLINK_NETFILTER},
	{"NETLINK_GENERIC", C.NETLINK_GENERIC},
	{"NETLINK_ADD_MEMBERSHIP", C.NETLINK_ADD_MEMBERSHIP},
	{"NETLINK_DROP_MEMBERSHIP", C.NETLINK_DROP_MEMBERSHIP},
	{"NLA_F_NESTED", C.NLA_F_NESTED},
	{"NLA_F_NET_BYTEORDER", C.NLA_F_NET_BYTEORDER},
	{"NLA_ALIGNTO", C.NLA_ALIGNTO},

	// linux/genetlink.h
	{"GENL_NAMSIZ", C.GENL_NAMSIZ},
	{"GENL_MIN_ID", C.GENL_MIN_ID},
	{"GENL_ID_CTRL", C.GENL_ID_CTRL},
	{"GENL_ADMIN_PERM", C.GENL_ADMIN_PERM},
	{"CTRL_CMD_UNSPEC", C.CTRL_CMD_UNSPEC},
	{"CTRL_CMD_NEWFAMILY", C.CTRL_CMD_NEWFAMILY},
	{"CTRL_CMD_DELFAMILY", C.CTRL_CMD_DELFAMILY},
	{"CTRL_CMD_GETFAMILY", C.CTRL_CMD_GETFAMILY},
	{"CTRL_ATTR_UNSPEC", C.CTRL_ATTR_UNSPEC},
	{"CTRL_ATTR_FAMILY_ID", C.CTRL_ATTR_FAMILY_ID},
	{"CTRL_ATTR_FAMILY_NAME", C.CTRL_ATTR_FAMILY_NAME},
	{"CTRL_ATTR_VERSION", C.CTRL_ATTR_VERSION},
	{"CTRL_ATTR_HDRSIZE", C.CTRL_ATTR_HDRSIZE},
	{"CTRL_ATTR_MAXATTR", C.CTRL_ATTR_MAXATTR},
	{"CTRL_ATTR_OPS", C.CTRL_ATTR_OPS},
	{"CTRL_ATTR_MCAST_GROUPS", C.CTRL_ATTR_MCAST_GROUPS},

	// linux/rtnetlink.h
	{"RTM_NEWLINK", C.RTM_NEWLINK},
	{"RTM_DELLINK", C.RTM_DELLINK},
	{"RTM_GETLINK", C.RTM_GETLINK},
	{"RTM_SETLINK", C.RTM_SETLINK},
	{"RTM_NEWADDR", C.RTM_NEWADDR},
	{"RTM_DELADDR", C.RTM_DELADDR},
	{"RTM_GETADDR", C.RTM_GETADDR},
	{"RTM_NEWROUTE", C.RTM_NEWROUTE},
	{"RTM_DELROUTE", C.RTM_DELROUTE},
	{"RTM_GETROUTE", C.RTM_GETROUTE},
	{"RTM_NEWNEIGH", C.RTM_NEWNEIGH},
	{"RTM_DELNEIGH", C.RTM_DELNEIGH},
	{"RTM_GETNEIGH", C.RTM_GETNEIGH},
	{"RTM_NEWRULE", C.RTM_NEWRULE},
	{"RTM_DELRULE", C.RTM_DELRULE},
	{"RTM_GETRULE", C.RTM_GETRULE},
	{"RTM_NEWQDISC", C.RTM_NEWQDISC},
	{"RTM_DELQDISC", C.RTM_DELQDISC},
	{"RTM_GETQDISC", C.RTM_GETQDISC},
	{"RTM_NEWTCLASS", C.RTM_NEWTCLASS},
	{"RTM_DELTCLASS", C.RTM_DELTCLASS},
	{"RTM_GETTCLASS", C.RTM_GETTCLASS},
	{"RTM_NEWTFILTER", C.RTM_NEWTFILTER},
	{"RTM_DELTFILTER", C.RTM_DELTFILTER},
	{"RTM_GETTFILTER", C.RTM_GETTFILTER},
	{"RTN_UNSPEC", C.RTN_UNSPEC},
	{"RTN_UNICAST", C.RTN_UNICAST},
	{"RTN_LOCAL", C.RTN_LOCAL},
	{"RTN_BROADCAST", C.RTN_BROADCAST},
	{"RTN_ANYCAST", C.RTN_ANYCAST},
	{"RTN_MULTICAST", C.RTN_MULTICAST},
	{"RTN_BLACKHOLE", C.RTN_BLACKHOLE},
	{"RTN_UNREACHABLE", C.RTN_UNREACHABLE},
	{"RTN_PROHIBIT", C.RTN_PROHIBIT},
	{"RTN_THROW", C.RTN_THROW},
	{"RTN_NAT", C.RTN_NAT},
	{"RTPROT_UNSPEC", C.RTPROT_UNSPEC},
	{"RTPROT_REDIRECT", C.RTPROT_REDIRECT},
	{"RTPROT_KERNEL", C.RTPROT_KERNEL},
	{"RTPROT_BOOT", C.RTPROT_BOOT},
	{"RTPROT_STATIC", C.RTPROT_STATIC},
	{"RTPROT_DHCP", C.RTPROT_DHCP},
	{"RTPROT_RA", C.RTPROT_RA},
	{"RT_SCOPE_UNIVERSE", C.RT_SCOPE_UNIVERSE},
	{"RT_SCOPE_SITE", C.RT_SCOPE_SITE},
	{"RT_SCOPE_LINK", C.RT_SCOPE_LINK},
	{"RT_SCOPE_HOST", C.RT_SCOPE_HOST},
	{"RT_SCOPE_NOWHERE", C.RT_SCOPE_NOWHERE},
	{"RT_TABLE_UNSPEC", C.RT_TABLE_UNSPEC},
	{"RT_TABLE_COMPAT", C.RT_TABLE_COMPAT},
	{"RT_TABLE_DEFAULT", C.RT_TABLE_DEFAULT},
	{"RT_TABLE_MAIN", C.RT_TABLE_MAIN},
	{"RT_TABLE_LOCAL", C.RT_TABLE_LOCAL},
	{"RTA_UNSPEC", C.RTA_UNSPEC},
	{"RTA_DST", C.RTA_DST},
	{"RTA_SRC", C.RTA_SRC},
	{"RTA_IIF", C.RTA_IIF},
	{"RTA_OIF", C.RTA_OIF},
	{"RTA_GATEWAY", C.RTA_GATEWAY},
	{"RTA_PRIORITY", C.RTA_PRIORITY},
	{"RTA_PREFSRC", C.RTA_PREFSRC},
	{"RTA_METRICS", C.RTA_METRICS},
	{"RTA_MULTIPATH", C.RTA_MULTIPATH},
	{"RTA_FLOW", C.RTA_FLOW},
	{"RTA_CACHEINFO", C.RTA_CACHEINFO},
	{"RTA_TABLE", C.RTA_TABLE},
	{"RTA_MARK", C.RTA_MARK},
	{"RTMGRP_LINK", C.RTMGRP_LINK},
	{"RTMGRP_NOTIFY", C.RTMGRP_NOTIFY},
	{"RTMGRP_NEIGH", C.RTMGRP_NEIGH},
	{"RTMGRP_TC", C.RTMGRP_TC},
	{"RTMGRP_IPV4_IFADDR", C.RTMGRP_IPV4_IFADDR},
	{"RTMGRP_IPV4_ROUTE", C.RTMGRP_IPV4_ROUTE},
	{"RTMGRP_IPV6_IFADDR", C.RTMGRP_IPV6_IFADDR},
	{"RTMGRP_IPV6_ROUTE", C.RTMGRP_IPV6_ROUTE},
	{"RTNLGRP_NONE", C.RTNLGRP_NONE},
	{"RTNLGRP_LINK", C.RTNLGRP_LINK},
	{"RTNLGRP_NOTIFY", C.RTNLGRP_NOTIFY},
	{"RTNLGRP_NEIGH", C.RTNLGRP_NEIGH},
	{"RTNLGRP_TC", C.RTNLGRP_TC},
	{"RTNLGRP_IPV4_IFADDR", C.RTNLGRP_IPV4_IFADDR},
	{"RTNLGRP_IPV4_ROUTE", C.RTNLGRP_IPV4_ROUTE},
	{"RTNLGRP_IPV6_IFADDR", C.RTNLGRP_IPV6_IFADDR},
	{"RTNLGRP_IPV6_ROUTE", C.RTNLGRP_IPV6_ROUTE},

	// linux/if_link.h
	{"IFLA_UNSPEC", C.IFLA_UNSPEC},
	{"IFLA_ADDRESS", C.IFLA_ADDRESS},
	{"IFLA_BROADCAST", C.IFLA_BROADCAST},
	{"IFLA_IFNAME", C.IFLA_IFNAME},
	{"IFLA_MTU", C.IFLA_MTU},
	{"IFLA_LINK", C.IFLA_LINK},
	{"IFLA_QDISC", C.IFLA_QDISC},
	{"IFLA_STATS", C.IFLA_STATS},
	{"IFLA_MASTER", C.IFLA_MASTER},
	{"IFLA_TXQLEN", C.IFLA_TXQLEN},
	{"IFLA_MAP", C.IFLA_MAP},
	{"IFLA_OPERSTATE", C.IFLA_OPERSTATE},
	{"IFLA_LINKMODE", C.IFLA_LINKMODE},
	{"IFLA_LINKINFO", C.IFLA_LINKINFO},
	{"IFLA_NET_NS_PID", C.IFLA_NET_NS_PID},
	{"IFLA_IFALIAS", C.IFLA_IFALIAS},
	{"IFLA_STATS64", C.IFLA_STATS64},
	{"IFLA_GROUP", C.IFLA_GROUP},
	{"IFLA_EXT_MASK", C.IFLA_EXT_MASK},
	{"IFLA_PROMISCUITY", C.IFLA_PROMISCUITY},
	{"IFLA_NUM_TX_QUEUES", C.IFLA_NUM_TX_QUEUES},
	{"IFLA_NUM_RX_QUEUES", C.IFLA_NUM_RX_QUEUES},
	{"IFLA_CARRIER", C.IFLA_CARRIER},
	{"IFLA_INFO_UNSPEC", C.IFLA_INFO_UNSPEC},
	{"IFLA_INFO_KIND", C.IFLA_INFO_KIND},
	{"IFLA_INFO_DATA", C.IFLA_INFO_DATA},
	{"IFLA_INFO_XSTATS", C.IFLA_INFO_XSTATS},
	{"IFLA_INFO_SLAVE_KIND", C.IFLA_INFO_SLAVE_KIND},
	{"IFLA_INFO_SLAVE_DATA", C.IFLA_INFO_SLAVE_DATA},
	{"IFLA_VLAN_UNSPEC", C.IFLA_VLAN_UNSPEC},
	{"IFLA_VLAN_ID", C.IFLA_VLAN_ID},
	{"IFLA_VLAN_FLAGS", C.IFLA_VLAN_FLAGS},
	{"IFLA_VLAN_PROTOCOL", C.IFLA_VLAN_PROTOCOL},
	{"IFLA_VRF_UNSPEC", C.IFLA_VRF_UNSPEC},
	{"IFLA_VRF_TABLE", C.IFLA_VRF_TABLE},

	// linux/neighbour.h
	{"NDA_UNSPEC", C.NDA_UNSPEC},
	{"NDA_DST", C.NDA_DST},
	{"NDA_LLADDR", C.NDA_LLADDR},
	{"NDA_CACHEINFO", C.NDA_CACHEINFO},
	{"NDA_PROBES", C.NDA_PROBES},
	{"NDA_VLAN", C.NDA_VLAN},
	{"NDA_PORT", C.NDA_PORT},
	{"NDA_VNI", C.NDA_VNI},
	{"NDA_IFINDEX", C.NDA_IFINDEX},
	{"NDA_MASTER", C.NDA_MASTER},
	{"NUD_NONE", C.NUD_NONE},
	{"NUD_INCOMPLETE", C.NUD_INCOMPLETE},
	{"NUD_REACHABLE", C.NUD_REACHABLE},
	{"NUD_STALE", C.NUD_STALE},
	{"NUD_DELAY", C.NUD_DELAY},
	{"NUD_PROBE", C.NUD_PROBE},
	{"NUD_FAILED", C.NUD_FAILED},
	{"NUD_NOARP", C.NUD_NOARP},
	{"NUD_PERMANENT", C.NUD_PERMANENT},
	{"NTF_USE", C.NTF_USE},
	{"NTF_SELF", C.NTF_SELF},
	{"NTF_MASTER", C.NTF_MASTER},
	{"NTF_PROXY", C.NTF_PROXY},
	{"NTF_ROUTER", C.NTF_ROUTER},
}
