package dataset

import (
	"context"

	"clueboard/internal/tabular"
)

type textSource struct {
	location string
	client   HTTPDoer
}

func (s *textSource) Rows(ctx context.Context) ([][]string, error) {
	data, err := fetch(ctx, s.location, s.client)
	if err != nil {
		return nil, err
	}
	return tabular.Parse(decodeText(data)), nil
}

func (s *textSource) Describe() string {
	return "csv " + s.location
}
