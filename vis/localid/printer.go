package localid

import (
	"strings"

	"github.com/dnv-opensource/vista-sdk-go/vis/gmodpath"
)

// String renders the LocalId's wire form (spec §4.H, §6):
//
//	/dnv-v2/vis-<version>/<primary-short>/[sec/<secondary-short>/][verbose-common-names/]meta/<tag>/<tag>/...
func (l LocalId) String() string {
	var b strings.Builder
	b.WriteByte('/')
	b.WriteString(NamingRule)
	b.WriteString("/vis-")
	b.WriteString(l.Version.String())
	b.WriteByte('/')
	b.WriteString(l.PrimaryItem.String())

	if l.SecondaryItem != nil {
		b.WriteString("/sec/")
		b.WriteString(l.SecondaryItem.String())
	}

	if l.VerboseMode {
		for _, seg := range verboseSegments(l.PrimaryItem) {
			b.WriteString("/~")
			b.WriteString(seg)
		}
		if l.SecondaryItem != nil {
			for _, seg := range verboseSegments(*l.SecondaryItem) {
				b.WriteString("/~for.")
				b.WriteString(seg)
			}
		}
	}

	b.WriteString("/meta")
	for _, tag := range l.Tags() {
		b.WriteByte('/')
		b.WriteString(tag.String())
	}

	return b.String()
}

// verboseSegments yields one "name[.location]" segment per function node
// of path that is a leaf or the target, in path order (spec §4.H).
func verboseSegments(path gmodpath.GmodPath) []string {
	names := path.CommonNames()
	out := make([]string, 0, len(names))
	for _, cn := range names {
		node := path.Node(cn.Depth)
		seg := normalizeCommonName(cn.Name)
		if !node.Location.IsZero() {
			seg += "." + node.Location.String()
		}
		out = append(out, seg)
	}
	return out
}

// normalizeCommonName implements the verbose-mode normalization rule
// (spec §4.H): lowercase, spaces collapsed and turned into dots,
// "/()&," removed, consecutive dots collapsed.
func normalizeCommonName(name string) string {
	cleaned := strings.Map(func(r rune) rune {
		switch r {
		case '/', '(', ')', '&', ',':
			return -1
		default:
			return r
		}
	}, name)

	collapsed := strings.Join(strings.Fields(cleaned), " ")

	var b strings.Builder
	prevDot := false
	for i := 0; i < len(collapsed); i++ {
		ch := collapsed[i]
		var cur byte
		if ch == ' ' {
			cur = '.'
		} else {
			cur = toLowerByte(ch)
		}
		if cur == '.' && prevDot {
			continue
		}
		b.WriteByte(cur)
		prevDot = cur == '.'
	}
	return b.String()
}

func toLowerByte(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b - 'A' + 'a'
	}
	return b
}
