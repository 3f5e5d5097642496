package types

import (
	"net/netip"

	"github.com/celexpr/celc/common/types/ref"
)

// CIDR is the CEL cidr variant: an (ip, prefix length)
// pair identifying a network block.
type CIDR struct {
	prefix netip.Prefix
}

// CIDRType is the singleton type tag for CIDR.
var CIDRType = NewTypeValue("cidr")

// ParseCIDR parses a "addr/prefixlen" literal.
func ParseCIDR(s string) ref.Val {
	p, err := netip.ParsePrefix(s)
	if err != nil {
		return NewErr("invalid cidr literal '%s': %v", s, err)
	}
	if p.Addr().Zone() != "" {
		return NewErr("cidr literal '%s' must not have a zone", s)
	}
	return CIDR{prefix: p.Masked()}
}

func (c CIDR) Type() ref.Type { return CIDRType }
func (c CIDR) Value() interface{} { return c.prefix }
func (c CIDR) String() string { return c.prefix.String() }

// PrefixLength backs the `cidr.prefixLength` accessor.
func (c CIDR) PrefixLength() int { return c.prefix.Bits() }

// ContainsIP backs `cidr.containsIP(ip)`.
func (c CIDR) ContainsIP(addr IP) ref.Val {
	return Bool(c.prefix.Contains(addr.addr.Unmap()))
}

// ContainsCIDR backs `cidr.containsCIDR(other)`: true iff other is fully
// contained within c's address block.
func (c CIDR) ContainsCIDR(other CIDR) ref.Val {
	if other.prefix.Bits() < c.prefix.Bits() {
		return False
	}
	return Bool(c.prefix.Contains(other.prefix.Addr().Unmap()))
}

// MaskedIP backs `cidr.masked()`, returning the network address with host
// bits cleared.
func (c CIDR) MaskedIP() IP {
	return IP{addr: c.prefix.Masked().Addr()}
}

func (c CIDR) Equal(other ref.Val) ref.Val {
	o, ok := other.(CIDR)
	if !ok {
		return False
	}
	return Bool(c.prefix == o.prefix)
}

func (c CIDR) ConvertToType(typeVal ref.Type) ref.Val {
	switch typeVal {
	case CIDRType:
		return c
	case StringType:
		return String(c.String())
	case TypeType:
		return CIDRType
	}
	return NewErr("type conversion error from '%s' to '%s'", CIDRType.TypeName(), typeVal.TypeName())
}
