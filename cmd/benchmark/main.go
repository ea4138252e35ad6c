package main

import (
	"encoding/csv"
	"errors"
	"flag"
	"fmt"
	"log"
	"math/rand/v2"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/limaJavier/classplanner/pkg/generator"
	"github.com/limaJavier/classplanner/pkg/model"
	"github.com/samber/lo"
)

type ResultType int

const (
	generated ResultType = iota
	exhausted
	failed
)

var resultTypes = map[ResultType]string{
	generated: "generated",
	exhausted: "exhausted",
	failed:    "failed",
}

type SizeMetadata struct {
	Users    int
	Subjects int
}

type RoomMetadata struct {
	Labs         int
	LectureHalls int
}

type BenchmarkResult struct {
	Size         SizeMetadata
	Rooms        RoomMetadata
	Seed         uint64
	Duration     int64
	FailedPasses int
	Slots        int
	Result       ResultType
}

func main() {
	// Define arguments
	sizesPtr := flag.String("sizes", "10x40,20x80,40x160", "Comma separated USERSxSUBJECTS sizes to generate")
	roomsPtr := flag.String("rooms", "5x9,2x4", "Comma separated LABSxLECTURE_HALLS room configurations; the rooms are taken from the built-in lists")
	seedsPtr := flag.Int("seeds", 5, "Number of seeds to run per size and room configuration")
	outFilePathPtr := flag.String("out", "benchmark_results.csv", "Path to the CSV file where the results will be written")
	flag.Parse()

	sizes, err := parsePairs(*sizesPtr)
	if err != nil {
		log.Fatalf("invalid sizes: %v", err)
	}
	rooms, err := parsePairs(*roomsPtr)
	if err != nil {
		log.Fatalf("invalid rooms: %v", err)
	} else if *seedsPtr <= 0 {
		log.Fatalf("seeds must be positive: %v", *seedsPtr)
	}

	results := make([]BenchmarkResult, 0, len(sizes)*len(rooms)**seedsPtr)
	for _, size := range sizes {
		for _, room := range rooms {
			for seed := uint64(1); seed <= uint64(*seedsPtr); seed++ {
				sizeMetadata := SizeMetadata{Users: size[0], Subjects: size[1]}
				roomMetadata := RoomMetadata{Labs: room[0], LectureHalls: room[1]}
				fmt.Printf("Benchmarking %v users and %v subjects in %v labs and %v lecture halls with seed %v\n", sizeMetadata.Users, sizeMetadata.Subjects, roomMetadata.Labs, roomMetadata.LectureHalls, seed)

				results = append(results, measure(sizeMetadata, roomMetadata, seed))
			}
		}
	}

	if err := toCsv(*outFilePathPtr, results); err != nil {
		log.Fatalf("cannot write results: %v", err)
	}
}

// parsePairs reads "AxB,CxD" into [[A B] [C D]]. Every number must be positive
func parsePairs(value string) ([][2]int, error) {
	pairs := make([][2]int, 0)
	for _, item := range strings.Split(value, ",") {
		left, right, found := strings.Cut(strings.TrimSpace(item), "x")
		if !found {
			return nil, fmt.Errorf("%q is not of the form AxB", item)
		}
		a, err := strconv.Atoi(left)
		if err != nil {
			return nil, err
		}
		b, err := strconv.Atoi(right)
		if err != nil {
			return nil, err
		}
		if a <= 0 || b <= 0 {
			return nil, fmt.Errorf("%q must hold positive numbers", item)
		}
		pairs = append(pairs, [2]int{a, b})
	}
	return pairs, nil
}

func measure(size SizeMetadata, rooms RoomMetadata, seed uint64) BenchmarkResult {
	result := BenchmarkResult{Size: size, Rooms: rooms, Seed: seed}

	timetableGenerator, err := generator.New(generator.Options{
		Users:        size.Users,
		Subjects:     size.Subjects,
		Labs:         generator.Labs[:min(rooms.Labs, len(generator.Labs))],
		LectureHalls: generator.LectureHalls[:min(rooms.LectureHalls, len(generator.LectureHalls))],
		Random:       rand.New(rand.NewPCG(seed, seed)),
	})
	if err != nil {
		log.Fatalf("cannot build generator: %v", err)
	}

	start := time.Now()
	state, err := timetableGenerator.Run()
	result.Duration = time.Since(start).Milliseconds()
	result.FailedPasses = timetableGenerator.Passes()
	result.Slots = len(state.Slots)
	result.Result = classify(err)
	return result
}

func classify(err error) ResultType {
	if err == nil {
		return generated
	} else if errors.Is(err, model.ErrExhaustedRetries) {
		return exhausted
	}
	return failed
}

func toCsv(path string, results []BenchmarkResult) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("cannot create CSV file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.WriteAll(toRecords(results)); err != nil {
		return fmt.Errorf("cannot write CSV records: %w", err)
	}
	return nil
}

func toRecords(results []BenchmarkResult) [][]string {
	header := []string{"Users", "Subjects", "Labs", "LectureHalls", "Seed", "Duration(ms)", "FailedPasses", "Slots", "Result"}
	return append([][]string{header}, lo.Map(results, func(result BenchmarkResult, _ int) []string {
		return []string{
			fmt.Sprintf("%d", result.Size.Users),
			fmt.Sprintf("%d", result.Size.Subjects),
			fmt.Sprintf("%d", result.Rooms.Labs),
			fmt.Sprintf("%d", result.Rooms.LectureHalls),
			fmt.Sprintf("%d", result.Seed),
			fmt.Sprintf("%d", result.Duration),
			fmt.Sprintf("%d", result.FailedPasses),
			fmt.Sprintf("%d", result.Slots),
			resultTypes[result.Result],
		}
	})...)
}
