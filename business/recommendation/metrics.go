package recommendation

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	branchColdStart    = "cold_start"
	branchPersonalized = "personalized"
)

var (
	RecommendationsServedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommendations_served_total",
			Help: "Count of recommendation requests served, by branch.",
		},
		[]string{"branch"},
	)

	RecommendationResultSize = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "recommendation_result_size",
			Help:    "Number of products returned per recommendation request.",
			Buckets: []float64{0, 1, 5, 10, 20, 50},
		},
		[]string{"branch"},
	)
)

func init() {
	prometheus.MustRegister(RecommendationsServedTotal, RecommendationResultSize)
}

func observeResult(res Result) {
	branch := branchPersonalized
	if res.ColdStart {
		branch = branchColdStart
	}
	RecommendationsServedTotal.WithLabelValues(branch).Inc()
	RecommendationResultSize.WithLabelValues(branch).Observe(float64(len(res.Products)))
}
