package packtest

import (
	"fmt"

	"github.com/golang/mock/gomock"
)

// BytesMatcher is a gomock matcher that matches []byte arguments
// equal to the given string.
type BytesMatcher string

var _ gomock.Matcher = BytesMatcher("")

func (m BytesMatcher) String() string {
	return fmt.Sprintf("bytes %q", string(m))
}

// Matches reports whether x is a []byte with the expected contents.
func (m BytesMatcher) Matches(x interface{}) bool {
	bs, ok := x.([]byte)
	if !ok {
		return false
	}
	return string(bs) == string(m)
}
