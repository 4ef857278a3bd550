package buildmapbin

import (
	"os"

	"shanhu.io/buildmap"
	"shanhu.io/misc/errcode"
)

func cmdDump(args []string) error {
	flags := cmdFlags.New()
	configFile := declareConfigFlag(flags)
	format := flags.String("format", "json", "output format, json or yaml")
	out := flags.String("out", "", "output file; prints to stdout if empty")
	flags.ParseArgs(args)

	d, err := composeDescriptor(*configFile)
	if err != nil {
		return err
	}
	e, err := buildmap.NewExport(d)
	if err != nil {
		return err
	}

	var bs []byte
	switch *format {
	case "json":
		if *out != "" {
			return e.WriteFile(*out)
		}
		bs, err = e.JSON()
	case "yaml":
		bs, err = e.YAML()
	default:
		return errcode.InvalidArgf("unknown format %q", *format)
	}
	if err != nil {
		return errcode.Annotatef(err, "encode %s", *format)
	}

	if *out == "" {
		bs = append(bs, '\n')
		_, err := os.Stdout.Write(bs)
		return err
	}
	return os.WriteFile(*out, bs, 0644)
}
