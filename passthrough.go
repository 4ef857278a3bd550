package buildmap

import (
	"path"
	"strings"
)

// Bundles names the files emitted by production builds.
type Bundles struct {
	// Entry is the boot module emitted into the temp folder, relative to
	// that folder. The production script bundle starts from it.
	Entry string `json:",omitempty"`

	JavaScript string `json:",omitempty"`
	CSS        string `json:",omitempty"`
	VendorCSS  string `json:",omitempty"`
}

func defaultBundles() *Bundles {
	return &Bundles{
		Entry:      "core/boot.js",
		JavaScript: "bundle.min.js",
		CSS:        "bundle.min.css",
		VendorCSS:  "vendor.min.css",
	}
}

func (b *Bundles) merge(o *Bundles) {
	if o == nil {
		return
	}
	if o.Entry != "" {
		b.Entry = o.Entry
	}
	if o.JavaScript != "" {
		b.JavaScript = o.JavaScript
	}
	if o.CSS != "" {
		b.CSS = o.CSS
	}
	if o.VendorCSS != "" {
		b.VendorCSS = o.VendorCSS
	}
}

func (c *composer) checkBundles(b *Bundles) {
	for _, f := range []struct {
		name, value string
	}{
		{"javascript", b.JavaScript},
		{"css", b.CSS},
		{"vendor css", b.VendorCSS},
	} {
		if f.value == "" {
			c.errorf("%s bundle name is empty", f.name)
		} else if strings.ContainsAny(f.value, "/\\") {
			c.errorf("%s bundle name %q is not a file name", f.name, f.value)
		}
	}
	if b.Entry == "" {
		c.errorf("boot entry is empty")
	} else if !isSubPath(b.Entry) {
		c.errorf("boot entry %q is not a path inside the temp folder", b.Entry)
	}
	if b.CSS != "" && b.CSS == b.VendorCSS {
		c.errorf("css bundles share the name %q", b.CSS)
	}
}

// MinifyCSS are the options handed to the CSS minifier unmodified.
type MinifyCSS struct {
	KeepBreaks          bool `json:"keepBreaks" yaml:"keepBreaks"`
	KeepSpecialComments bool `json:"keepSpecialComments" yaml:"keepSpecialComments"`
	Compatibility       bool `json:"compatibility" yaml:"compatibility"`

	// AggressiveMerging must stay off; it breaks stylesheets shipped in
	// the vendor bundle.
	AggressiveMerging bool `json:"aggressiveMerging" yaml:"aggressiveMerging"`
}

func defaultMinifyCSS() *MinifyCSS {
	return &MinifyCSS{
		KeepBreaks:          false,
		KeepSpecialComments: true, // license comments
		Compatibility:       false,
		AggressiveMerging:   false,
	}
}

func defaultAutoprefixerBrowsers() []string {
	return []string{
		"ie >= 10",
		"ie_mob >= 10",
		"ff >= 30",
		"chrome >= 34",
		"safari >= 7",
		"opera >= 23",
		"ios >= 7",
		"android >= 4.4",
		"bb >= 10",
	}
}

// WebServerNames label the development and production serving contexts.
type WebServerNames struct {
	Dev  string `json:"dev" yaml:"dev"`
	Dist string `json:"dist" yaml:"dist"`
}

func defaultWebServerNames() *WebServerNames {
	return &WebServerNames{
		Dev:  "MDW_DEV",
		Dist: "MDW_DIST",
	}
}

// isSubPath reports whether p names a file strictly inside the folder it is
// joined to.
func isSubPath(p string) bool {
	if path.IsAbs(p) || strings.ContainsAny(p, "*?[]{}!\\") {
		return false
	}
	p = path.Clean(p)
	return p != "." && p != ".." && !strings.HasPrefix(p, "../")
}
