package main

import (
	"flag"
	"os"
	"strings"
	"time"

	"benritz/bondval/bond"

	"github.com/rs/zerolog"
)

func parseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Now(), nil
	}
	return time.Parse("2006-01-02", s)
}

func parseConvention(s string) (bond.Convention, bool) {
	switch strings.ToUpper(s) {
	case "30/360":
		return bond.Thirty360, true
	case "ACT/365":
		return bond.Actual365, true
	case "ACT/360":
		return bond.Actual360, true
	}
	return "", false
}

func main() {
	coupon := flag.Float64("coupon", 0.0, "Coupon rate (%) of the bond")
	faceValue := flag.Float64("facevalue", 100, "Face value of the bond")
	yield := flag.Float64("yield", 0.0, "Annual yield (%) to price at")
	transactionDateStr := flag.String("transactiondate", "", "Transaction date of the bond (YYYY-MM-DD, default today)")
	maturityDateStr := flag.String("maturitydate", "", "Maturity date of the bond (YYYY-MM-DD)")
	frequency := flag.Int("frequency", 2, "Coupon payments per year")
	conventionStr := flag.String("convention", "30/360", "Day count convention (30/360, ACT/365, ACT/360)")

	flag.Parse()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}).
		With().
		Timestamp().
		Logger()

	flagsSet := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) {
		flagsSet[f.Name] = true
	})

	if !flagsSet["coupon"] {
		log.Fatal().Msg("-coupon flag is required")
	}
	if !flagsSet["yield"] {
		log.Fatal().Msg("-yield flag is required")
	}
	if !flagsSet["maturitydate"] || *maturityDateStr == "" {
		log.Fatal().Msg("-maturitydate flag is required")
	}

	transactionDate, err := parseDate(*transactionDateStr)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid transaction date")
	}

	maturityDate, err := parseDate(*maturityDateStr)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid maturity date")
	}

	convention, ok := parseConvention(*conventionStr)
	if !ok {
		log.Fatal().Str("convention", *conventionStr).Msg("unknown day count convention")
	}

	b, err := bond.New(bond.Terms{
		TransactionDate: transactionDate,
		MaturityDate:    maturityDate,
		FaceValue:       *faceValue,
		CouponRate:      bond.RateOf(*coupon),
		Frequency:       *frequency,
		Convention:      convention,
		AnnualYield:     yield,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("invalid bond terms")
	}

	p := b.Period()
	log.Info().
		Int("periods", p.Periods).
		Float64("period_days", p.PeriodDays).
		Float64("accrued_days", p.AccruedDays).
		Bool("on_coupon", p.OnCoupon()).
		Msg("coupon period layout")

	result, err := b.Price()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to price bond")
	}

	log.Info().
		Float64("dirty_price", result.DirtyPrice).
		Float64("accrued_interest", result.AccruedInterest).
		Float64("clean_price", result.CleanPrice).
		Msg("bond price")
}
