package response

import (
	"hotel-backoffice/internal/pkg/errs"

	"github.com/jinzhu/copier"
)

// copyFields maps flat views onto response structs by field name.
func copyFields(to, from any) error {
	if err := copier.Copy(to, from); err != nil {
		return errs.Wrapf(err, "response mapping %T -> %T", from, to)
	}
	return nil
}
