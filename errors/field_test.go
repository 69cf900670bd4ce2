package errors

import (
	"reflect"
	"testing"
)

func TestFieldErrors(t *testing.T) {
	// Declare errors upfront so that DeepEqual can be used for comparison.
	var (
		unauthorizedNameErr = Field("name", ErrUnauthorized, "a")
		humanNameErr        = Field("name", ErrHuman, "b")
		emptyGenderErr      = Field("gender", ErrEmpty, "gender is required")
		userMultiErr        = Field("user", Append(
			humanNameErr,
			Append(emptyGenderErr, ErrState),
		), "user data invalid")
	)

	cases := map[string]struct {
		Err   error
		Field string
		Want  []error
	}{
		"a single error found by the name": {
			Err:   unauthorizedNameErr,
			Field: "name",
			Want:  []error{unauthorizedNameErr},
		},
		"two error found by the name": {
			Err:   Append(unauthorizedNameErr, humanNameErr),
			Field: "name",
			Want:  []error{unauthorizedNameErr, humanNameErr},
		},
		"field can contain a multierror": {
			Err:   userMultiErr,
			Field: "user",
			Want:  []error{userMultiErr},
		},
		"field can inspect errors tree to find match": {
			Err:   userMultiErr,
			Field: "gender",
			Want:  []error{emptyGenderErr},
		},
		"nil error returns nothing": {
			Err:   nil,
			Field: "foo",
			Want:  nil,
		},
		"no match": {
			Err:   humanNameErr,
			Field: "gender",
			Want:  nil,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			got := FieldErrors(tc.Err, tc.Field)
			if !reflect.DeepEqual(tc.Want, got) {
				t.Fatalf("unexpected result: %v", got)
			}
		})
	}
}

func TestFieldNilIsNil(t *testing.T) {
	if err := Field("x", nil, "nothing"); err != nil {
		t.Fatalf("want nil, got %v", err)
	}
	if err := AppendField(nil, "x", nil); err != nil {
		t.Fatalf("want nil, got %v", err)
	}
}

func TestFieldErrorMessage(t *testing.T) {
	err := Field("Destinations.1.Address", ErrInput, "length %d", 3)
	want := `field "Destinations.1.Address": length 3: invalid input`
	if got := err.Error(); got != want {
		t.Fatalf("want %q, got %q", want, got)
	}
	if !ErrInput.Is(err) {
		t.Fatal("field error must keep its kind")
	}
}

func TestFieldPath(t *testing.T) {
	cases := map[string]struct {
		Elems []interface{}
		Want  string
	}{
		"single name":      {Elems: []interface{}{"Payer"}, Want: "Payer"},
		"indexed element":  {Elems: []interface{}{"Destinations", 2, "Address"}, Want: "Destinations.2.Address"},
		"nothing is empty": {Elems: nil, Want: ""},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			if got := Path(tc.Elems...); got != tc.Want {
				t.Fatalf("want %q, got %q", tc.Want, got)
			}
		})
	}
}

func TestFieldErrorsSkipsMatchedSubtree(t *testing.T) {
	inner := Field("amount", ErrAmount, "")
	outer := Field("amount", Append(inner, ErrState), "")

	got := FieldErrors(Wrap(outer, "split"), "amount")
	if len(got) != 1 || got[0] != outer {
		t.Fatalf("want only the outer field error, got %v", got)
	}
	if !ErrAmount.Is(outer) {
		t.Fatal("kind must be found through the field error")
	}
}
