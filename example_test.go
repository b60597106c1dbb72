package probable_test

import (
	"encoding/binary"
	"fmt"
	"sync"

	"github.com/jcalabro/probable"
)

// This example demonstrates basic bloom filter usage for membership testing.
func Example() {
	// Create a filter for 10,000 items with 1% false positive rate
	f, err := probable.New(10_000, 0.01)
	if err != nil {
		panic(err)
	}

	f.Add([]byte("apple"))
	f.Add([]byte("banana"))
	f.Add([]byte("cherry"))

	fmt.Println("apple:", f.Test([]byte("apple")))   // true (added)
	fmt.Println("banana:", f.Test([]byte("banana"))) // true (added)
	fmt.Println("grape:", f.Test([]byte("grape")))   // false (not added)

	// Output:
	// apple: true
	// banana: true
	// grape: false
}

// This example shows how to use string keys without allocation overhead.
func Example_stringKeys() {
	f, err := probable.NewPartitioned(10_000, 0.01)
	if err != nil {
		panic(err)
	}

	f.AddString("user:12345")
	f.AddString("user:67890")

	fmt.Println("user:12345 exists:", f.TestString("user:12345"))
	fmt.Println("user:99999 exists:", f.TestString("user:99999"))

	// Output:
	// user:12345 exists: true
	// user:99999 exists: false
}

// This example selects the filter layout at runtime through the Filter interface.
func Example_variants() {
	for _, v := range []probable.Variant{probable.Classic, probable.Partitioned} {
		f, err := probable.NewFilter(v, 1000, 0.01)
		if err != nil {
			panic(err)
		}
		f.Add([]byte("key"))
		fmt.Printf("%s: size=%d found=%v\n", v, f.Size(), f.Test([]byte("key")))
	}

	// Output:
	// classic: size=9586 found=true
	// partitioned: size=7 found=true
}

// This example demonstrates sharing a filter between goroutines.
func Example_concurrent() {
	inner, err := probable.NewPartitioned(100_000, 0.01)
	if err != nil {
		panic(err)
	}
	f := probable.NewLocked(inner)

	var wg sync.WaitGroup
	for i := range 4 {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			for j := range 1000 {
				f.Add(fmt.Appendf(nil, "worker-%d-item-%d", worker, j))
			}
		}(i)
	}
	wg.Wait()

	fmt.Println("worker-0-item-0:", f.Test([]byte("worker-0-item-0")))
	fmt.Println("items added:", inner.Count())

	// Output:
	// worker-0-item-0: true
	// items added: 4000
}

// This example shows how to monitor filter health.
func Example_statistics() {
	f, err := probable.NewPartitioned(1000, 0.01)
	if err != nil {
		panic(err)
	}

	var buf [4]byte
	for i := range uint32(500) {
		binary.BigEndian.PutUint32(buf[:], i)
		f.Add(buf[:])
	}

	fmt.Printf("Items: %d\n", f.Count())
	fmt.Printf("Partitions: %d of %d bits\n", f.K(), f.PartitionSize())
	fmt.Printf("Est. FP rate below target: %v\n", f.EstimatedFalsePositiveRate() < 0.01)

	// Output:
	// Items: 500
	// Partitions: 7 of 1369 bits
	// Est. FP rate below target: true
}

func ExampleOptimalParams() {
	p, err := probable.OptimalParams(1_000_000, 0.01)
	if err != nil {
		panic(err)
	}

	fmt.Printf("m=%d k=%d\n", p.M, p.K)
	fmt.Printf("Memory: %.2f MB\n", float64(p.M)/8/1024/1024)

	// Output:
	// m=9585059 k=7
	// Memory: 1.14 MB
}

func ExampleOptimalParams_invalid() {
	_, err := probable.OptimalParams(0, 0.01)
	fmt.Println(err)

	// Output:
	// probable: expected item count must be at least 1
}

func ExampleEstimateFalsePositiveRate() {
	p, _ := probable.OptimalParams(10_000, 0.01)

	fmt.Printf("At capacity: %.3f\n", probable.EstimateFalsePositiveRate(p.M, p.K, 10_000))
	fmt.Printf("At 2x capacity: %.3f\n", probable.EstimateFalsePositiveRate(p.M, p.K, 20_000))

	// Output:
	// At capacity: 0.010
	// At 2x capacity: 0.157
}
