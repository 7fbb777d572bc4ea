package response

import (
	"github.com/jinzhu/copier"
)

// copyAll maps each view onto a fresh response value by matching field names.
func copyAll[V any, R any](views []*V) ([]*R, error) {
	out := make([]*R, 0, len(views))
	for _, v := range views {
		r := new(R)
		if err := copier.Copy(r, v); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, nil
}

func copyOne[V any, R any](view *V) (*R, error) {
	r := new(R)
	if err := copier.Copy(r, view); err != nil {
		return nil, err
	}
	return r, nil
}
