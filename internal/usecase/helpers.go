package usecase

import "strconv"

func floatToString(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
