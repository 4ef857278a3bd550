package buildmapbin

import (
	"log"

	"shanhu.io/buildmap"
	"shanhu.io/misc/errcode"
)

func cmdCheck(args []string) error {
	flags := cmdFlags.New()
	configFile := declareConfigFlag(flags)
	in := flags.String(
		"in", "", "exported descriptor to check instead of composing one",
	)
	flags.ParseArgs(args)

	var d *buildmap.Descriptor
	if *in != "" {
		read, err := buildmap.ReadExportFile(*in)
		if err != nil {
			return err
		}
		d = read
	} else {
		composed, err := composeDescriptor(*configFile)
		if err != nil {
			return err
		}
		d = composed
	}

	if errs := buildmap.Check(d); errs != nil {
		printErrs(errs)
		return errcode.InvalidArgf("check got %d errors", len(errs))
	}

	digest, err := d.Digest()
	if err != nil {
		return err
	}
	log.Printf("descriptor ok, %s", digest)
	return nil
}
