// SPDX-License-Identifier: MIT

package report

import "errors"

var (
	// ErrNoRecords indicates a renderer or writer was given nothing to show.
	ErrNoRecords = errors.New("report: no records")

	// ErrUnknownFormat indicates an unsupported chart format or file extension.
	ErrUnknownFormat = errors.New("report: unknown format")

	// ErrMalformedCSV indicates a CSV file that is not a benchmark table.
	ErrMalformedCSV = errors.New("report: malformed csv")
)
