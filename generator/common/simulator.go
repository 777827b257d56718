package common

import (
	"fmt"
	"io"

	ic "github.com/Uthara1292/small-business-analysis/innercommunication"

	"github.com/op/go-logging"
	"github.com/schollz/progressbar/v3"
)

var log = logging.MustGetLogger("log")

// IDSequence hands out consecutive transaction ids.
type IDSequence struct {
	next int64
}

func NewIDSequence(first int64) *IDSequence {
	return &IDSequence{next: first}
}

func (s *IDSequence) Next() int64 {
	id := s.next
	s.next++
	return id
}

// Simulator generates the transaction table day by day. It holds no
// global state: the random source is injected and the id sequence is
// created per run.
type Simulator struct {
	config   *Config
	rnd      RandomSource
	volume   DailyVolumeSampler
	clock    *TimeOfDaySampler
	products *ProductSelector
	quantity *Distribution[int]
	payment  *Distribution[ic.PaymentMethod]
	customer *Distribution[ic.CustomerType]
	progress io.Writer
}

func NewSimulator(config *Config, catalog []CatalogEntry, rnd RandomSource) (*Simulator, error) {
	clock, err := NewTimeOfDaySampler(DefaultHourWeights)
	if err != nil {
		return nil, fmt.Errorf("hour weights: %w", err)
	}
	products, err := NewProductSelector(catalog, config.CoffeeWeight)
	if err != nil {
		return nil, fmt.Errorf("product weights: %w", err)
	}
	return &Simulator{
		config: config,
		rnd:    rnd,
		volume: DailyVolumeSampler{
			Mean:   config.MeanDailyTransactions,
			StdDev: config.StdDevDailyTransactions,
			Floor:  config.MinDailyTransactions,
		},
		clock:    clock,
		products: products,
		quantity: MustDistribution(DefaultQuantityWeights...),
		payment:  MustDistribution(DefaultPaymentWeights...),
		customer: MustDistribution(DefaultCustomerWeights...),
	}, nil
}

// SetProgressOutput enables a progress bar, one step per simulated day.
func (s *Simulator) SetProgressOutput(w io.Writer) {
	s.progress = w
}

// Run simulates every day from the configured start to end date inclusive.
// Records come out grouped by ascending date.
func (s *Simulator) Run() []ic.Transaction {
	days := s.config.Days()
	bar := s.newProgressBar(days)
	ids := NewIDSequence(s.config.FirstTransactionID)

	transactions := make([]ic.Transaction, 0, days*max(int(s.config.MeanDailyTransactions), s.config.MinDailyTransactions))
	for day := s.config.Start; !day.After(s.config.End.Time); day = day.AddDays(1) {
		transactions = s.simulateDay(day, ids, transactions)
		if bar != nil {
			_ = bar.Add(1)
		}
	}
	if bar != nil {
		_ = bar.Finish()
	}

	log.Debugf("Simulated %d days, %d transactions", days, len(transactions))
	return transactions
}

func (s *Simulator) simulateDay(day ic.Date, ids *IDSequence, out []ic.Transaction) []ic.Transaction {
	count := s.volume.Sample(s.rnd)
	for range count {
		out = append(out, s.newTransaction(day, ids.Next()))
	}
	return out
}

func (s *Simulator) newTransaction(day ic.Date, id int64) ic.Transaction {
	at := s.clock.Sample(s.rnd)
	product := s.products.Sample(s.rnd)
	quantity := s.quantity.Sample(s.rnd)

	return ic.Transaction{
		TransactionID: id,
		Date:          day,
		Time:          at,
		Item:          product.Item,
		Category:      product.Category,
		Price:         product.Price,
		Quantity:      quantity,
		TotalSpent:    product.Price.Times(quantity),
		PaymentMethod: s.payment.Sample(s.rnd),
		CustomerType:  s.customer.Sample(s.rnd),
	}
}

func (s *Simulator) newProgressBar(days int) *progressbar.ProgressBar {
	if s.progress == nil {
		return nil
	}
	return progressbar.NewOptions(days,
		progressbar.OptionSetWriter(s.progress),
		progressbar.OptionSetDescription("Generating transactions..."),
		progressbar.OptionShowCount(),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprintln(s.progress)
		}),
	)
}
