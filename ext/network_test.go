package ext

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/celexpr/celc/common/types"
	"github.com/celexpr/celc/common/types/ref"
)

func TestNetworkIPParseAndFamily(t *testing.T) {
	d := newDispatcher(t, Network)
	ipFn := find(t, d, "ip", false, 1)
	family := find(t, d, "family", true, 0)

	v4 := ipFn(nil, []ref.Val{types.String("192.168.1.1")})
	require.False(t, types.IsError(v4))
	assert.Equal(t, types.Int(4), family(v4, nil))

	v6 := ipFn(nil, []ref.Val{types.String("::1")})
	require.False(t, types.IsError(v6))
	assert.Equal(t, types.Int(6), family(v6, nil))

	assert.True(t, types.IsError(ipFn(nil, []ref.Val{types.String("not an ip")})))
}

func TestNetworkIsIP(t *testing.T) {
	d := newDispatcher(t, Network)
	isIP := find(t, d, "isIP", false, 1)
	assert.Equal(t, types.Bool(true), isIP(nil, []ref.Val{types.String("10.0.0.1")}))
	assert.Equal(t, types.Bool(false), isIP(nil, []ref.Val{types.String("nope")}))
}

func TestNetworkCIDRContainsIP(t *testing.T) {
	d := newDispatcher(t, Network)
	ipFn := find(t, d, "ip", false, 1)
	cidrFn := find(t, d, "cidr", false, 1)
	containsIP := find(t, d, "containsIP", true, 1)

	cidr := cidrFn(nil, []ref.Val{types.String("10.0.0.0/24")})
	require.False(t, types.IsError(cidr))

	inside := ipFn(nil, []ref.Val{types.String("10.0.0.5")})
	outside := ipFn(nil, []ref.Val{types.String("10.0.1.5")})

	assert.Equal(t, types.Bool(true), containsIP(cidr, []ref.Val{inside}))
	assert.Equal(t, types.Bool(false), containsIP(cidr, []ref.Val{outside}))
}

func TestNetworkPrefixLength(t *testing.T) {
	d := newDispatcher(t, Network)
	cidrFn := find(t, d, "cidr", false, 1)
	prefixLength := find(t, d, "prefixLength", true, 0)

	cidr := cidrFn(nil, []ref.Val{types.String("10.0.0.0/24")})
	assert.Equal(t, types.Int(24), prefixLength(cidr, nil))
}
