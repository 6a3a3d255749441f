package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdfmosaic/pdfmosaic/pkg/pdf"
)

// infoCommand creates the info command that inspects a PDF without rendering.
func (c *CLI) infoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "info [file.pdf]",
		Short: "Show page count and page sizes of a PDF",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runInfo(args[0])
		},
	}
}

func (c *CLI) runInfo(input string) error {
	doc, err := pdf.Open(input)
	if err != nil {
		return err
	}
	defer doc.Close()

	pageCount := doc.PageCount()

	printKeyValue("File", input)
	printKeyValue("Pages", fmt.Sprintf("%d", pageCount))
	printNewline()

	for i := 0; i < pageCount; i++ {
		bounds, err := doc.PageBounds(i)
		if err != nil {
			return err
		}
		printDetail("page %d: %dx%d pt", i+1, bounds.Dx(), bounds.Dy())
	}

	printNewline()
	printNextStep("Compose a mosaic", fmt.Sprintf("%s %s -c 4 -w 300", appName, input))
	return nil
}
