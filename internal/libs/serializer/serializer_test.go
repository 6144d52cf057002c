package serializer

import (
	"errors"
	"testing"

	"github.com/hyp3rd/rtanalysis/internal/sentinel"
)

type fixture struct {
	ResponseTimes []float64 `codec:"rt"       json:"rt"       msgpack:"rt"`
	Accuracy      []bool    `codec:"accuracy" json:"accuracy" msgpack:"accuracy"`
}

func TestRegistryRoundTrip(t *testing.T) {
	original := fixture{
		ResponseTimes: []float64{1.25, 2.5, 3.75},
		Accuracy:      []bool{true, false, true},
	}

	for _, name := range []string{"default", "msgpack", "cbor"} {
		t.Run(name, func(t *testing.T) {
			codec, err := New(name)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			data, err := codec.Marshal(original)
			if err != nil {
				t.Fatalf("marshal: %v", err)
			}

			var decoded fixture
			if err := codec.Unmarshal(data, &decoded); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}

			if len(decoded.ResponseTimes) != 3 || decoded.ResponseTimes[1] != 2.5 {
				t.Errorf("response times did not survive the round trip: %v", decoded.ResponseTimes)
			}
			if len(decoded.Accuracy) != 3 || decoded.Accuracy[1] {
				t.Errorf("accuracy did not survive the round trip: %v", decoded.Accuracy)
			}
		})
	}
}

func TestRegistryUnknownSerializer(t *testing.T) {
	if _, err := New("yaml"); !errors.Is(err, sentinel.ErrSerializerNotFound) {
		t.Errorf("expected ErrSerializerNotFound, got %v", err)
	}
}

func TestRegistryEmptyName(t *testing.T) {
	if _, err := New(""); !errors.Is(err, sentinel.ErrParamCannotBeEmpty) {
		t.Errorf("expected ErrParamCannotBeEmpty, got %v", err)
	}
}
