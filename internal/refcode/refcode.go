// Package refcode produces human-readable reference codes for reports,
// permission tickets, whitelist certificates and legal cases.
package refcode

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/benbjohnson/clock"
)

// Prefixes for the four code families.
const (
	PrefixReport      = "SIG"
	PrefixPermission  = "AUT"
	PrefixCertificate = "CERT"
	PrefixLegalCase   = "JUR"
)

// Generator builds codes of the form <PREFIX>-<YYYYMMDD>-<NNNN> where the
// date is the generation instant and NNNN is drawn uniformly from
// [1000, 9999]. Codes are not guaranteed unique; callers must treat the
// integer entity id as identity and the code as a human reference only.
type Generator struct {
	clock clock.Clock

	mu  sync.Mutex
	rnd *rand.Rand
}

func New(clk clock.Clock) *Generator {
	return &Generator{
		clock: clk,
		rnd:   rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (g *Generator) Ref(prefix string) string {
	g.mu.Lock()
	n := g.rnd.Intn(9000) + 1000
	g.mu.Unlock()
	return fmt.Sprintf("%s-%s-%04d", prefix, g.clock.Now().Format("20060102"), n)
}
