package main

import (
	"context"
	"fmt"
	"os"

	"github.com/pkg/errors"

	"github.com/saraquenta/Sistema-EAME/core/report"
)

// export writes the report workbook of the given cohort year to path.
func (cli *commandLine) export(year, scopeStr, path string) error {
	if err := cli.svcs.Validate.Var(year, "year"); err != nil {
		return fmt.Errorf("invalid year %q", year)
	}
	scope, err := report.ParseScope(scopeStr)
	if err != nil {
		return err
	}
	buf, err := cli.svcs.Report.Export(context.Background(), year, scope)
	if err != nil {
		return errors.Wrap(err, "exporting report")
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return errors.Wrap(err, "writing workbook")
	}
	fmt.Fprintf(cli.out, "report written to %s\n", path)
	return nil
}
