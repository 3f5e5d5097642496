package ext

import (
	"net/netip"

	"github.com/celexpr/celc/common/types"
	"github.com/celexpr/celc/common/types/ref"
	"github.com/celexpr/celc/interpreter"
)

// Network registers the ip/cidr constructors and their accessor methods.
func Network(d *interpreter.Dispatcher) {
	d.Register("ip", false, 1, func(_ ref.Val, args []ref.Val) ref.Val {
		s, ok := args[0].(types.String)
		if !ok {
			return types.NewErr("ip() requires string, got '%s'", args[0].Type().TypeName())
		}
		return types.ParseIP(string(s))
	})
	d.Register("cidr", false, 1, func(_ ref.Val, args []ref.Val) ref.Val {
		s, ok := args[0].(types.String)
		if !ok {
			return types.NewErr("cidr() requires string, got '%s'", args[0].Type().TypeName())
		}
		return types.ParseCIDR(string(s))
	})
	d.Register("isIP", false, 1, func(_ ref.Val, args []ref.Val) ref.Val {
		s, ok := args[0].(types.String)
		if !ok {
			return types.NewErr("isIP() requires string, got '%s'", args[0].Type().TypeName())
		}
		_, err := netip.ParseAddr(string(s))
		return types.Bool(err == nil)
	})

	ipMethod := func(fn func(types.IP) ref.Val) interpreter.Function {
		return func(target ref.Val, args []ref.Val) ref.Val {
			ip, ok := target.(types.IP)
			if !ok {
				return types.NewErr("ip method unsupported on type '%s'", target.Type().TypeName())
			}
			return fn(ip)
		}
	}
	d.Register("family", true, 0, ipMethod(func(ip types.IP) ref.Val { return types.Int(ip.Family()) }))
	d.Register("isUnspecified", true, 0, ipMethod(func(ip types.IP) ref.Val { return types.Bool(ip.IsUnspecified()) }))
	d.Register("isLoopback", true, 0, ipMethod(func(ip types.IP) ref.Val { return types.Bool(ip.IsLoopback()) }))
	d.Register("isGlobalUnicast", true, 0, ipMethod(func(ip types.IP) ref.Val { return types.Bool(ip.IsGlobalUnicast()) }))
	d.Register("isLinkLocalMulticast", true, 0, ipMethod(func(ip types.IP) ref.Val { return types.Bool(ip.IsLinkLocalMulticast()) }))
	d.Register("isLinkLocalUnicast", true, 0, ipMethod(func(ip types.IP) ref.Val { return types.Bool(ip.IsLinkLocalUnicast()) }))
	d.Register("isCanonical", true, 1, func(target ref.Val, args []ref.Val) ref.Val {
		ip, ok := target.(types.IP)
		if !ok {
			return types.NewErr("isCanonical() unsupported on type '%s'", target.Type().TypeName())
		}
		original, ok := args[0].(types.String)
		if !ok {
			return types.NewErr("isCanonical() requires a string argument")
		}
		return types.Bool(ip.IsCanonical(string(original)))
	})

	d.Register("containsIP", true, 1, func(target ref.Val, args []ref.Val) ref.Val {
		cidr, ok := target.(types.CIDR)
		if !ok {
			return types.NewErr("containsIP() unsupported on type '%s'", target.Type().TypeName())
		}
		ip, ok := args[0].(types.IP)
		if !ok {
			return types.NewErr("containsIP() requires an ip argument")
		}
		return cidr.ContainsIP(ip)
	})
	d.Register("containsCIDR", true, 1, func(target ref.Val, args []ref.Val) ref.Val {
		cidr, ok := target.(types.CIDR)
		if !ok {
			return types.NewErr("containsCIDR() unsupported on type '%s'", target.Type().TypeName())
		}
		other, ok := args[0].(types.CIDR)
		if !ok {
			return types.NewErr("containsCIDR() requires a cidr argument")
		}
		return cidr.ContainsCIDR(other)
	})
	d.Register("masked", true, 0, func(target ref.Val, _ []ref.Val) ref.Val {
		cidr, ok := target.(types.CIDR)
		if !ok {
			return types.NewErr("masked() unsupported on type '%s'", target.Type().TypeName())
		}
		return cidr.MaskedIP()
	})
	d.Register("prefixLength", true, 0, func(target ref.Val, _ []ref.Val) ref.Val {
		cidr, ok := target.(types.CIDR)
		if !ok {
			return types.NewErr("prefixLength() unsupported on type '%s'", target.Type().TypeName())
		}
		return types.Int(cidr.PrefixLength())
	})
}
