package quoter_test

import (
	"testing"

	"github.com/honeynil/quoter"
	"github.com/honeynil/quoter/drivers/mock"
)

func TestTestHelper(t *testing.T) {
	driver := mock.New()
	th := quoter.NewTest(t, driver.Config())

	th.AssertLiteral(quoter.Text("it's"), "'it''s'")
	th.AssertLiteral(quoter.Binary([]byte("ab")), "'hex:6162'")
	th.AssertLiteral(quoter.Null(), "NULL")
	th.AssertUnescapeBytea("6162", []byte("ab"))
	th.AssertInvalidTableName("a.b.c")

	if got := th.MustQuoteTableName(`s."t.u"`); got != "[s].[t.u]" {
		t.Errorf("MustQuoteTableName = %q", got)
	}
	if b := th.MustTypeCast(quoter.Binary([]byte{1})); !b.IsBinary() {
		t.Error("binary value should bind in binary format")
	}
}

func TestTestHelper_TestIdentifierRoundTrip(t *testing.T) {
	th := quoter.NewTest(t, quoter.Config{})

	th.TestIdentifierRoundTrip(
		quoter.QualifiedName{Identifier: "users"},
		quoter.QualifiedName{Identifier: "a.b"},
		quoter.QualifiedName{Schema: "raw.data", Identifier: "events"},
		quoter.QualifiedName{Schema: `q"s`, Identifier: `t"`},
	)
}
