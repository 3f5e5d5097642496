package types

import (
	"net/netip"
	"strings"

	"github.com/celexpr/celc/common/types/ref"
)

// IP is the CEL ip variant introduced by the network extension: an IPv4
// or IPv6 address. Zone identifiers are rejected at parse time, and
// IPv4-mapped IPv6 addresses compare equal to their IPv4 counterpart.
type IP struct {
	addr netip.Addr
}

// IPType is the singleton type tag for IP.
var IPType = NewTypeValue("ip")

// ParseIP parses a dotted-decimal or colon-hex address string. Zone
// identifiers ("%eth0") and IPv4-mapped IPv6 literals in dotted-decimal
// form ("::ffff:1.2.3.4" written as plain dotted decimal) are rejected.
func ParseIP(s string) ref.Val {
	addr, err := netip.ParseAddr(s)
	if err != nil {
		return NewErr("invalid ip literal '%s': %v", s, err)
	}
	if addr.Zone() != "" {
		return NewErr("ip literal '%s' must not have a zone", s)
	}
	if addr.Is4In6() && strings.Contains(s, ".") {
		return NewErr("ip literal '%s' must not be an IPv4-mapped IPv6 address in dotted-decimal form", s)
	}
	return IP{addr: addr}
}

// NewIP wraps an already-parsed address, used by the CIDR methods.
func NewIP(addr netip.Addr) IP { return IP{addr: addr} }

func (i IP) Type() ref.Type { return IPType }
func (i IP) Value() interface{} { return i.addr }
func (i IP) String() string { return i.addr.String() }

// Family returns 4 or 6, backing the `family` accessor function.
func (i IP) Family() int {
	if i.addr.Is4() || i.addr.Is4In6() {
		return 4
	}
	return 6
}

func (i IP) IsUnspecified() bool { return i.addr.IsUnspecified() }
func (i IP) IsLoopback() bool { return i.addr.IsLoopback() }
func (i IP) IsGlobalUnicast() bool { return i.addr.IsGlobalUnicast() }
func (i IP) IsLinkLocalMulticast() bool { return i.addr.IsLinkLocalMulticast() }
func (i IP) IsLinkLocalUnicast() bool { return i.addr.IsLinkLocalUnicast() }

// IsCanonical reports whether the original literal was already in the
// canonical (`addr.String()`) form, backing `ip.isCanonical`.
func (i IP) IsCanonical(original string) bool {
	return i.addr.String() == original
}

// Equal compares IPs by family then bytes, with IPv4-mapped IPv6 equal to
// the corresponding IPv4 address.
func (i IP) Equal(other ref.Val) ref.Val {
	o, ok := other.(IP)
	if !ok {
		return False
	}
	return Bool(i.addr.Unmap() == o.addr.Unmap())
}

func (i IP) ConvertToType(typeVal ref.Type) ref.Val {
	switch typeVal {
	case IPType:
		return i
	case StringType:
		return String(i.String())
	case TypeType:
		return IPType
	}
	return NewErr("type conversion error from '%s' to '%s'", IPType.TypeName(), typeVal.TypeName())
}
