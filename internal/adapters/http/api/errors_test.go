package api_test

import (
	"errors"
	"testing"

	"github.com/okian/talkscore/internal/adapters/http/api"
	. "github.com/smartystreets/goconvey/convey"
)

func TestErrorHelpers(t *testing.T) {
	Convey("Given the op error helpers", t, func() {
		cause := errors.New("unexpected EOF")

		Convey("Wrap should keep the cause and ignore nil", func() {
			err := api.Wrap("api.op", cause)
			So(err.Error(), ShouldEqual, "api.op: unexpected EOF")
			So(errors.Is(err, cause), ShouldBeTrue)
			So(api.Wrap("api.op", nil), ShouldBeNil)
		})

		Convey("WrapKind should match both kind and cause", func() {
			err := api.WrapKind("api.op", api.ErrBadRequest, cause)
			So(err.Error(), ShouldEqual, "api.op: bad request: unexpected EOF")
			So(errors.Is(err, api.ErrBadRequest), ShouldBeTrue)
			So(errors.Is(err, cause), ShouldBeTrue)
			So(errors.Is(err, api.ErrRateLimited), ShouldBeFalse)
		})

		Convey("NewKind should carry only the kind", func() {
			err := api.NewKind("api.op", api.ErrRateLimited)
			So(err.Error(), ShouldEqual, "api.op: rate limited")
			So(errors.Is(err, api.ErrRateLimited), ShouldBeTrue)
		})
	})
}
