package provider

import (
	"sort"

	"github.com/streamsan-cli/streamsan/log"
	"github.com/streamsan-cli/streamsan/source"
)

// Fetch queries a single index and normalizes the result into a viable candidate batch.
//
// Failures are absorbed: any network or parse error is logged and surfaces as
// an empty batch, never as an error to the caller. Candidates below the
// minimum seeder threshold are discarded (exactly-at-threshold survives) and
// the survivors are ordered by seeders descending.
func Fetch(idx Index, query source.Query, minSeeders int) []*source.Candidate {
	raw, err := idx.Search(query)
	if err != nil {
		log.Warnf("provider %s: search %q failed: %v", idx.Name(), query.String(), err)
		return nil
	}

	candidates := make([]*source.Candidate, 0, len(raw))
	for _, c := range raw {
		if c.Seeders < minSeeders {
			continue
		}

		c.Provider = idx.Name()
		c.ParseReleaseMeta()
		candidates = append(candidates, c)
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Seeders > candidates[j].Seeders
	})

	return candidates
}
