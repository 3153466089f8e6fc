package scatter

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/tdewolff/test"
)

func TestParseNumber(t *testing.T) {
	var tts = []struct {
		s string
		f float64
	}{
		{"", 0.0},
		{"  ", 0.0},
		{"12", 12.0},
		{" 45.5 ", 45.5},
		{"-3", -3.0},
		{"1e3", 1000.0},
		{".5", 0.5},
		{"Infinity", math.Inf(1)},
		{"-Infinity", math.Inf(-1)},
		{"1e400", math.Inf(1)},
	}
	for _, tt := range tts {
		t.Run(tt.s, func(t *testing.T) {
			test.T(t, ParseNumber(tt.s), tt.f)
		})
	}

	for _, s := range []string{"abc", "12abc", "1,000", "NaN", "inf", "0x10", "1_000", "--1"} {
		t.Run(s, func(t *testing.T) {
			test.That(t, math.IsNaN(ParseNumber(s)), s)
		})
	}
}

func TestLoad(t *testing.T) {
	ds, err := Load(strings.NewReader("id,geography,stateAbbr,foodstampsNum,percentRenting,extra\n1,Alabama,AL,312305,31.1,x\n2,Alaska,AK,24539,36.2,y\n"))
	test.Error(t, err)
	test.T(t, len(ds), 2)
	test.T(t, ds[0], Record{Geography: "Alabama", StateAbbr: "AL", FoodstampsNum: 312305, PercentRenting: 31.1})
	test.T(t, ds[1], Record{Geography: "Alaska", StateAbbr: "AK", FoodstampsNum: 24539, PercentRenting: 36.2})
}

func TestLoadColumnOrder(t *testing.T) {
	ds, err := Load(strings.NewReader("percentRenting,stateAbbr,foodstampsNum,geography\n5,WY,10,Wyoming\n"))
	test.Error(t, err)
	test.T(t, ds, Dataset{{Geography: "Wyoming", StateAbbr: "WY", FoodstampsNum: 10, PercentRenting: 5}})
}

func TestLoadBOM(t *testing.T) {
	ds, err := Load(strings.NewReader("\ufeffgeography,stateAbbr,foodstampsNum,percentRenting\nUtah,UT,1,2\n"))
	test.Error(t, err)
	test.T(t, len(ds), 1)
	test.String(t, ds[0].Geography, "Utah")
}

func TestLoadNumbers(t *testing.T) {
	ds, err := Load(strings.NewReader("geography,stateAbbr,foodstampsNum,percentRenting\nOhio,OH,n/a,\nIowa,IA,7\n"))
	test.Error(t, err)
	test.T(t, len(ds), 2)
	test.That(t, math.IsNaN(ds[0].FoodstampsNum), "unparseable cell")
	test.Float(t, ds[0].PercentRenting, 0.0)
	test.Float(t, ds[1].FoodstampsNum, 7.0)
	test.That(t, math.IsNaN(ds[1].PercentRenting), "missing cell")
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(strings.NewReader(""))
	test.That(t, errors.Is(err, ErrNoHeader))

	_, err = Load(strings.NewReader("geography,stateAbbr,percentRenting\nOhio,OH,1\n"))
	test.That(t, errors.Is(err, ErrMissingColumn))
	test.That(t, strings.Contains(err.Error(), "foodstampsNum"), err)

	_, err = Load(strings.NewReader("geography,stateAbbr,foodstampsNum,percentRenting\n\"Ohio,OH,1,2\n"))
	test.That(t, err != nil, "unterminated quote")
}

func TestLoadFile(t *testing.T) {
	ds, err := LoadFile("testdata/data.csv")
	test.Error(t, err)
	test.T(t, len(ds), 20)
	test.String(t, ds[8].Geography, "District of Columbia")

	_, err = LoadFile("testdata/missing.csv")
	test.That(t, err != nil)
	test.That(t, strings.Contains(err.Error(), "missing.csv"), err)
}

func TestDatasetMax(t *testing.T) {
	foodstamps := func(r Record) float64 { return r.FoodstampsNum }
	test.Float(t, Dataset{}.Max(foodstamps), 0.0)
	test.Float(t, Dataset{{FoodstampsNum: 10}, {FoodstampsNum: 30}, {FoodstampsNum: 20}}.Max(foodstamps), 30.0)
	test.Float(t, Dataset{{FoodstampsNum: math.NaN()}, {FoodstampsNum: 5}}.Max(foodstamps), 5.0)
	test.Float(t, Dataset{{FoodstampsNum: -5}, {FoodstampsNum: -2}}.Max(foodstamps), -2.0)
}
