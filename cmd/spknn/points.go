package main

import (
	"encoding/csv"
	"io"
	"strconv"
	"strings"

	"github.com/GaluL/splogger"
	"github.com/GaluL/splogger/sppoint"
	"github.com/pkg/errors"
)

// parseCoords parses "c1,c2,..." into coordinates.
func parseCoords(fields []string) ([]float64, error) {
	coords := make([]float64, 0, len(fields))
	for i, f := range fields {
		c, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return nil, errors.Wrapf(err, "coordinate %d", i+1)
		}
		coords = append(coords, c)
	}
	return coords, nil
}

// parseQuery parses the -query flag value.
func parseQuery(s string) (*sppoint.Point, error) {
	if len(strings.TrimSpace(s)) == 0 {
		return nil, errors.New("query is empty")
	}
	coords, err := parseCoords(strings.Split(s, ","))
	if err != nil {
		return nil, errors.WithMessage(err, "query")
	}
	return sppoint.New(coords, 0)
}

// readPoints reads "index,c1,c2,..." rows. Rows that cannot be parsed or
// whose dimension differs from dim are skipped with a warning; reading
// errors of the CSV stream itself are returned. Logging failures are kept
// in lf.
func readPoints(r io.Reader, dim int, logger *splogger.Logger, lf *logFailure) ([]*sppoint.Point, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.Comment = '#'
	cr.TrimLeadingSpace = true
	var points []*sppoint.Point
	for row := 1; ; row++ {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "read points")
		}
		p, err := parsePoint(record)
		if err == nil && p.Dim() != dim {
			err = errors.Wrapf(sppoint.ErrDimensionMismatch, "%d != %d", p.Dim(), dim)
		}
		if err != nil {
			lf.check(logger.Warningf("row %d skipped: %v", row, err))
			continue
		}
		lf.check(logger.Debugf("row %d: point %d loaded", row, p.Index()))
		points = append(points, p)
	}
	return points, nil
}

func parsePoint(record []string) (*sppoint.Point, error) {
	if len(record) < 2 {
		return nil, errors.New("expected index and at least one coordinate")
	}
	index, err := strconv.Atoi(strings.TrimSpace(record[0]))
	if err != nil {
		return nil, errors.Wrap(err, "index")
	}
	coords, err := parseCoords(record[1:])
	if err != nil {
		return nil, err
	}
	return sppoint.New(coords, index)
}
