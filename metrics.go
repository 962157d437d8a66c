package roadgraph

import (
	"sort"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// CapacityCollector reports Capacity() of registered storages as gauge.
// Storages which report IsClosed() == true are skipped.
type CapacityCollector struct {
	desc *prometheus.Desc

	mu       sync.Mutex
	storages map[string]Storable
}

// NewCapacityCollector returns collector of '<namespace>_storage_capacity_bytes' metric
func NewCapacityCollector(namespace string) *CapacityCollector {
	return &CapacityCollector{
		desc: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "storage", "capacity_bytes"),
			"Allocated storage size in bytes",
			[]string{"storage"},
			nil,
		),
		storages: make(map[string]Storable),
	}
}

// Register adds storage under given name. Storage with the same name is replaced.
func (collector *CapacityCollector) Register(name string, storage Storable) {
	collector.mu.Lock()
	defer collector.mu.Unlock()
	collector.storages[name] = storage
}

// Unregister removes storage
func (collector *CapacityCollector) Unregister(name string) {
	collector.mu.Lock()
	defer collector.mu.Unlock()
	delete(collector.storages, name)
}

func (collector *CapacityCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- collector.desc
}

func (collector *CapacityCollector) Collect(ch chan<- prometheus.Metric) {
	collector.mu.Lock()
	defer collector.mu.Unlock()
	names := make([]string, 0, len(collector.storages))
	for name := range collector.storages {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		storage := collector.storages[name]
		if closer, ok := storage.(interface{ IsClosed() bool }); ok && closer.IsClosed() {
			continue
		}
		ch <- prometheus.MustNewConstMetric(collector.desc, prometheus.GaugeValue, float64(storage.Capacity()), name)
	}
}
