package rules

import "sort"

// GroupDirectory expands a participant group tag into member reference IDs.
// Expand returns false when the tag is not a known group, in which case the
// tag is treated as a direct member reference.
type GroupDirectory interface {
	Expand(tag string) ([]string, bool)
}

// StaticDirectory is a map-backed GroupDirectory for pure callers and tests.
type StaticDirectory map[string][]string

func (d StaticDirectory) Expand(tag string) ([]string, bool) {
	members, ok := d[tag]
	return members, ok
}

// UniqueAudience resolves a participant list (group tags mixed with direct
// member references) into the deduplicated set of member references. A
// member reachable through a group and again directly counts once. The
// result is sorted so equal inputs always produce equal outputs.
func UniqueAudience(participants []string, dir GroupDirectory) []string {
	seen := make(map[string]struct{})
	for _, p := range participants {
		if members, ok := dir.Expand(p); ok {
			for _, m := range members {
				seen[m] = struct{}{}
			}
			continue
		}
		seen[p] = struct{}{}
	}

	audience := make([]string, 0, len(seen))
	for id := range seen {
		audience = append(audience, id)
	}
	sort.Strings(audience)
	return audience
}
