package typeface

import (
	"runtime"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// DefaultCandidates lists system fonts with broad script coverage, most
// complete first, for the current operating system.
func DefaultCandidates() []string {
	return candidatesFor(runtime.GOOS)
}

func candidatesFor(goos string) []string {
	switch goos {
	case "darwin":
		return []string{
			"/System/Library/Fonts/Supplemental/Arial Unicode.ttf",
			"/Library/Fonts/Arial Unicode.ttf",
			"/System/Library/Fonts/Hiragino Sans GB.ttc",
			"/System/Library/Fonts/ヒラギノ角ゴシック W3.ttc",
			"/System/Library/Fonts/AppleSDGothicNeo.ttc",
			"/System/Library/Fonts/Helvetica.ttc",
		}
	case "windows":
		return []string{
			`C:\Windows\Fonts\msyh.ttc`,
			`C:\Windows\Fonts\YuGothM.ttc`,
			`C:\Windows\Fonts\msgothic.ttc`,
			`C:\Windows\Fonts\malgun.ttf`,
			`C:\Windows\Fonts\arial.ttf`,
		}
	default:
		return []string{
			"/usr/share/fonts/opentype/noto/NotoSansCJK-Regular.ttc",
			"/usr/share/fonts/noto-cjk/NotoSansCJK-Regular.ttc",
			"/usr/share/fonts/google-noto-cjk/NotoSansCJK-Regular.ttc",
			"/usr/share/fonts/truetype/wqy/wqy-microhei.ttc",
			"/usr/share/fonts/truetype/droid/DroidSansFallbackFull.ttf",
			"/usr/share/fonts/truetype/noto/NotoSans-Regular.ttf",
			"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
			"/usr/share/fonts/dejavu/DejaVuSans.ttf",
			"/usr/share/fonts/TTF/DejaVuSans.ttf",
			"/usr/share/fonts/truetype/liberation/LiberationSans-Regular.ttf",
			"/usr/share/fonts/**/*.ttf",
		}
	}
}

// ExpandGlobs replaces each pattern containing glob metacharacters with
// the files it matches, sorted, keeping the position in the list.
// Plain paths pass through untouched. Invalid patterns are dropped.
func ExpandGlobs(candidates []string) []string {
	expanded := make([]string, 0, len(candidates))
	for _, c := range candidates {
		if !strings.ContainsAny(c, "*?[{") {
			expanded = append(expanded, c)
			continue
		}
		matches, err := doublestar.FilepathGlob(c, doublestar.WithFilesOnly())
		if err != nil {
			continue
		}
		sort.Strings(matches)
		expanded = append(expanded, matches...)
	}
	return expanded
}
