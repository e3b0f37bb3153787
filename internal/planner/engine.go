package planner

import (
	"context"
	"log/slog"
	"math"
	"math/rand/v2"
	"runtime"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/FACorreiaa/go-itinerary-planner/internal/types"
)

const (
	defaultPopulationSize = 30
	defaultMutationRate   = 0.15
	defaultMaxIterations  = 500

	tournamentSize = 3

	// Early termination once the population has settled.
	convergenceMinGeneration = 100
	convergenceStdDev        = 0.01
)

// Config tunes one engine instance. Zero values fall back to defaults.
type Config struct {
	PopulationSize int
	MutationRate   float64
	MaxIterations  int
	Workers        int
	Seed           uint64 // 0 seeds from the wall clock
}

func (c Config) withDefaults() Config {
	if c.PopulationSize <= 0 {
		c.PopulationSize = defaultPopulationSize
	}
	if c.MutationRate <= 0 {
		c.MutationRate = defaultMutationRate
	}
	if c.MaxIterations <= 0 {
		c.MaxIterations = defaultMaxIterations
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
	if c.Seed == 0 {
		c.Seed = uint64(time.Now().UnixNano())
	}
	return c
}

// Result is the outcome of one optimization run.
type Result struct {
	Itinerary   *types.Itinerary
	Score       float64
	Generations int
	Converged   bool
}

// Engine runs the genetic search. It is single-use: build one per
// optimization run. All stochastic operations draw from one injected,
// seedable RNG, used only from the breeding goroutine; fitness evaluation
// fans out across workers but touches no shared mutable state.
type Engine struct {
	catalog   *types.Catalog
	prefs     *types.UserPreferences
	weather   map[string]types.WeatherCondition
	cfg       Config
	evaluator *Evaluator
	rng       *rand.Rand
	logger    *slog.Logger

	population []*types.Itinerary
	best       *types.Itinerary
	bestScore  float64
}

// New builds an engine over a read-only catalog, preferences and per-day
// weather assignment (keyed by YYYY-MM-DD).
func New(catalog *types.Catalog, prefs *types.UserPreferences, weather map[string]types.WeatherCondition, cfg Config, logger *slog.Logger) *Engine {
	cfg = cfg.withDefaults()
	return &Engine{
		catalog:   catalog,
		prefs:     prefs,
		weather:   weather,
		cfg:       cfg,
		evaluator: NewEvaluator(prefs, catalog),
		rng:       rand.New(rand.NewPCG(cfg.Seed, cfg.Seed^0x9e3779b97f4a7c15)),
		logger:    logger,
	}
}

// Optimize runs the search until the generation cap, convergence, or
// cancellation. It never fails: on cancellation the best solution found so
// far is returned, and an empty catalog degrades to an all-empty plan with
// score 0.
func (e *Engine) Optimize(ctx context.Context) Result {
	e.logger.Info("starting itinerary optimization",
		slog.Int("population_size", e.cfg.PopulationSize),
		slog.Int("max_iterations", e.cfg.MaxIterations),
		slog.Int("catalog_size", e.catalog.Len()),
		slog.Int("days", e.prefs.NumDays()))

	e.initializePopulation()

	generations := 0
	converged := false

	for gen := 0; gen < e.cfg.MaxIterations; gen++ {
		select {
		case <-ctx.Done():
			e.logger.Info("optimization cancelled, returning best so far",
				slog.Int("generation", gen), slog.Float64("best_score", e.bestScore))
			return e.result(generations, false)
		default:
		}

		scores := e.evaluatePopulation(ctx)
		e.updateBest(scores)
		generations = gen + 1

		if gen%50 == 0 {
			e.logger.Debug("generation complete",
				slog.Int("generation", gen),
				slog.Float64("avg_score", mean(scores)),
				slog.Float64("best_score", e.bestScore))
		}

		if gen > convergenceMinGeneration && stdDev(scores) < convergenceStdDev {
			e.logger.Info("population converged", slog.Int("generation", gen))
			converged = true
			break
		}

		e.population = e.breed(scores)
	}

	return e.result(generations, converged)
}

func (e *Engine) result(generations int, converged bool) Result {
	best := e.best
	if best == nil {
		best = e.emptyItinerary()
	}
	best.FitnessScore = e.bestScore
	return Result{
		Itinerary:   best,
		Score:       e.bestScore,
		Generations: generations,
		Converged:   converged,
	}
}

// emptyItinerary preserves the plan shape when nothing could be scheduled:
// one empty day per date in range.
func (e *Engine) emptyItinerary() *types.Itinerary {
	numDays := e.prefs.NumDays()
	days := make([]types.DayPlan, 0, numDays)
	date := dayStart(e.prefs.StartDate)
	for i := 0; i < numDays; i++ {
		days = append(days, types.DayPlan{Date: date, Weather: e.weatherFor(date)})
		date = date.AddDate(0, 0, 1)
	}
	return &types.Itinerary{Days: days}
}

func (e *Engine) initializePopulation() {
	e.population = make([]*types.Itinerary, e.cfg.PopulationSize)
	for i := range e.population {
		// Each individual assembles against its own tracking set.
		e.population[i] = e.randomItinerary(e.rng, NewUsedSet())
	}
}

// evaluatePopulation scores every individual in parallel. Evaluation is
// read-only over the catalog and preferences, so the only write per worker
// is its own slot in the scores slice.
func (e *Engine) evaluatePopulation(ctx context.Context) []float64 {
	scores := make([]float64, len(e.population))
	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(e.cfg.Workers)
	for i := range e.population {
		g.Go(func() error {
			score := e.evaluator.Evaluate(e.population[i])
			e.population[i].FitnessScore = score
			scores[i] = score
			return nil
		})
	}
	_ = g.Wait()
	return scores
}

// updateBest keeps the best-ever solution monotonically non-decreasing.
func (e *Engine) updateBest(scores []float64) {
	maxIdx := 0
	for i, s := range scores {
		if s > scores[maxIdx] {
			maxIdx = i
		}
	}
	if e.best == nil || scores[maxIdx] > e.bestScore {
		e.bestScore = scores[maxIdx]
		e.best = e.population[maxIdx].Clone()
	}
}

// breed produces the next generation: elite clones first, the rest from
// tournament-selected parents via crossover and occasional mutation.
func (e *Engine) breed(scores []float64) []*types.Itinerary {
	next := make([]*types.Itinerary, 0, e.cfg.PopulationSize)

	eliteSize := e.cfg.PopulationSize / 10
	if eliteSize < 2 {
		eliteSize = 2
	}
	for _, idx := range topIndices(scores, eliteSize) {
		next = append(next, e.population[idx].Clone())
	}

	for len(next) < e.cfg.PopulationSize {
		parent1 := e.tournamentSelect(scores)
		parent2 := e.tournamentSelect(scores)
		child := e.crossover(e.rng, parent1, parent2)
		if e.rng.Float64() < e.cfg.MutationRate {
			child = e.mutate(e.rng, child)
		}
		next = append(next, child)
	}
	return next[:e.cfg.PopulationSize]
}

// tournamentSelect samples k individuals uniformly and keeps the fittest.
func (e *Engine) tournamentSelect(scores []float64) *types.Itinerary {
	k := tournamentSize
	if k > len(e.population) {
		k = len(e.population)
	}
	bestIdx := -1
	for _, idx := range e.rng.Perm(len(e.population))[:k] {
		if bestIdx == -1 || scores[idx] > scores[bestIdx] {
			bestIdx = idx
		}
	}
	return e.population[bestIdx]
}

// topIndices returns the indices of the n highest scores, best first.
func topIndices(scores []float64, n int) []int {
	idx := make([]int, len(scores))
	for i := range idx {
		idx[i] = i
	}
	sort.Slice(idx, func(a, b int) bool { return scores[idx[a]] > scores[idx[b]] })
	if n > len(idx) {
		n = len(idx)
	}
	return idx[:n]
}

func mean(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	sum := 0.0
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}

func stdDev(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	m := mean(xs)
	sum := 0.0
	for _, x := range xs {
		d := x - m
		sum += d * d
	}
	return math.Sqrt(sum / float64(len(xs)))
}
