package shipping

import "errors"

var ErrWilayaNotFound = errors.New("wilaya not found")
