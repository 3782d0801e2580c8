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
	price := flag.Float64("price", 0.0, "Observed dirty price of the bond")
	transactionDateStr := flag.String("transactiondate", "", "Transaction date of the bond (YYYY-MM-DD, default today)")
	maturityDateStr := flag.String("maturitydate", "", "Maturity date of the bond (YYYY-MM-DD)")
	frequency := flag.Int("frequency", 2, "Coupon payments per year")
	conventionStr := flag.String("convention", "30/360", "Day count convention (30/360, ACT/365, ACT/360)")
	maxIter := flag.Int("maxiter", 300, "Maximum solver iterations")

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
	if !flagsSet["price"] {
		log.Fatal().Msg("-price flag is required")
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

	estimate, err := b.ApproximateYield(*price)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to estimate yield")
	}
	log.Info().Float64("estimate_pct", estimate).Msg("approximate yield")

	ytm, err := b.YieldToMaturity(*price, bond.WithMaxIterations(*maxIter))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to solve yield")
	}

	repriced, err := b.PriceAtYield(ytm)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to reprice at solved yield")
	}

	log.Info().
		Float64("ytm_pct", ytm).
		Float64("repriced_dirty", repriced.DirtyPrice).
		Float64("accrued_interest", repriced.AccruedInterest).
		Float64("repriced_clean", repriced.CleanPrice).
		Msg("yield to maturity")
}
