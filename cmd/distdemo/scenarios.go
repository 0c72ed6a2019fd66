package main

import (
	"log/slog"

	"github.com/katalvlaran/lvprob/dist"
	"github.com/katalvlaran/lvprob/noise"
)

// coinWeather flips a fair coin; heads gives mostly sun, tails mostly clouds.
func coinWeather() dist.Distribution[string] {
	coin := dist.Must(dist.NewDiscrete([]dist.Entry[string]{
		{Value: "heads", Prob: 0.5},
		{Value: "tails", Prob: 0.5},
	}))
	heads := dist.Must(dist.NewDiscrete([]dist.Entry[string]{
		{Value: "Cloudy", Prob: 0.3},
		{Value: "Sun", Prob: 0.7},
	}))
	tails := dist.Must(dist.NewDiscrete([]dist.Entry[string]{
		{Value: "Rain", Prob: 0.3},
		{Value: "Cloudy", Prob: 0.7},
	}))
	return dist.Bind[string, string](coin, func(side string) dist.Distribution[string] {
		if side == "heads" {
			return heads
		}
		return tails
	})
}

// mood is happy unless it rains.
func mood(weather dist.Distribution[string]) dist.Distribution[string] {
	return dist.Map(weather, func(w string) string {
		if w == "Rain" {
			return ":("
		}
		return ":)"
	})
}

// thermometer reads a per-sky temperature through integer sensor noise.
func thermometer(weather dist.Distribution[string]) (dist.Distribution[int], error) {
	base := map[string]int{"Sun": 18, "Cloudy": 15, "Rain": 11}
	temp := dist.Map(weather, func(w string) int { return base[w] })
	jitter, err := noise.Binomial(4, 0.5)
	if err != nil {
		return nil, err
	}
	// Binomial(4, ½) is centred on 2.
	return dist.Shift(noise.Perturb[int](temp, jitter), -2), nil
}

func scenarioReports(cfg config, logger *slog.Logger) ([]report, error) {
	weather := coinWeather()
	dry, err := weather.Filter(func(w string) bool { return w != "Rain" })
	if err != nil {
		return nil, err
	}
	temp, err := thermometer(weather)
	if err != nil {
		return nil, err
	}

	base := dist.NewRand(cfg.seed)
	var reports []report
	for _, sc := range []struct {
		name string
		d    dist.Distribution[string]
	}{
		{"weather", weather},
		{"weather | no rain", dry},
		{"mood", mood(weather)},
	} {
		rep, err := measure(sc.name, sc.d, base, cfg, logger)
		if err != nil {
			return nil, err
		}
		reports = append(reports, rep)
	}
	rep, err := measure("thermometer", temp, base, cfg, logger)
	if err != nil {
		return nil, err
	}
	return append(reports, rep), nil
}
