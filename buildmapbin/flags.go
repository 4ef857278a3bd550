package buildmapbin

import (
	"shanhu.io/buildmap"
	"shanhu.io/misc/flagutil"
)

var cmdFlags = flagutil.NewFactory("buildmap")

func declareConfigFlag(flags *flagutil.FlagSet) *string {
	return flags.String(
		"config", buildmap.ConfigFile, "descriptor configuration file",
	)
}
