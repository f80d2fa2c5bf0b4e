// Package fetcher retrieves board pages over HTTP, rotating client
// identities and caching page content for a bounded time.
package fetcher

import "math/rand/v2"

// Desktop browser identities spanning the major browser/OS combinations.
// Rotating them varies the request fingerprint seen by source servers;
// this is decorative, not a security control.
var userAgents = []string{
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/131.0.0.0 Safari/537.36",
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/130.0.0.0 Safari/537.36",
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64; rv:133.0) Gecko/20100101 Firefox/133.0",
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64; rv:132.0) Gecko/20100101 Firefox/132.0",
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/131.0.0.0 Safari/537.36 Edg/131.0.0.0",
	"Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/131.0.0.0 Safari/537.36",
	"Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/18.1 Safari/605.1.15",
	"Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.6 Safari/605.1.15",
	"Mozilla/5.0 (Macintosh; Intel Mac OS X 10.15; rv:133.0) Gecko/20100101 Firefox/133.0",
	"Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/131.0.0.0 Safari/537.36",
	"Mozilla/5.0 (X11; Linux x86_64; rv:133.0) Gecko/20100101 Firefox/133.0",
	"Mozilla/5.0 (X11; Ubuntu; Linux x86_64; rv:132.0) Gecko/20100101 Firefox/132.0",
}

// IdentityPool hands out a random realistic User-Agent per request.
// It is stateless; successive calls are independent uniform draws.
type IdentityPool struct {
	agents []string
}

// NewIdentityPool builds a pool over the built-in identity set.
func NewIdentityPool() *IdentityPool {
	return &IdentityPool{agents: userAgents}
}

// Next returns one identity drawn uniformly at random.
func (p *IdentityPool) Next() string {
	return p.agents[rand.IntN(len(p.agents))]
}

// Size reports how many identities the pool rotates over.
func (p *IdentityPool) Size() int {
	return len(p.agents)
}

// Contains reports whether ua is one of the pool's identities.
func (p *IdentityPool) Contains(ua string) bool {
	for _, a := range p.agents {
		if a == ua {
			return true
		}
	}
	return false
}
