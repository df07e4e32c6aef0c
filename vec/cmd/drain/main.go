package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"go.lepak.sg/safer/slices"
	"go.lepak.sg/safer/vec"
)

var (
	num     = flag.Int("n", 7, "length of the array, holding 1 to n")
	rng     = flag.String("r", "1..4", "range to drain, e.g. 1..4, 1..=3, ..2, 3..")
	back    = flag.Bool("back", false, "if true, drain back to front")
	take    = flag.Int("take", -1, "number of elements to take before abandoning the drain (-1 takes all)")
	rotr    = flag.Int("rotr", 0, "rotate the array right by this much before draining")
	rotl    = flag.Int("rotl", 0, "rotate the array left by this much before draining")
	reverse = flag.Bool("reverse", false, "if true, reverse the array before draining")
)

func main() {
	flag.Parse()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		With().Timestamp().Str("cmd", "drain").Logger()

	if err := run(); err != nil {
		ev := log.Error().Err(err).Int("n", *num).Str("range", *rng)
		switch {
		case errors.Is(err, vec.ErrSyntax):
			ev.Msg("cannot parse range")
		case errors.Is(err, vec.ErrRange):
			ev.Msg("range does not fit the array")
		case errors.Is(err, slices.ErrRotation):
			ev.Int("rotr", *rotr).Int("rotl", *rotl).Msg("rotation does not fit the array")
		default:
			ev.Msg("failed")
		}
		os.Exit(2)
	}
}

// run turns the faults panicked by the library into errors.
func run() (err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		e, ok := r.(error)
		if !ok {
			panic(r)
		}
		err = e
	}()

	b, err := vec.ParseBounds(*rng)
	if err != nil {
		return err
	}

	s := make([]int, *num)
	for i := range s {
		s[i] = i + 1
	}
	if *reverse {
		slices.Reverse(s)
	}
	slices.RotateRight(s, *rotr)
	slices.RotateLeft(s, *rotl)
	fmt.Println("array:", s)

	var dropped []int
	v := vec.Of(s...)
	v.SetDropFunc(func(x int) {
		dropped = append(dropped, x)
	})

	d := v.Drain(b)
	next := d.Next
	if *back {
		next = d.NextBack
	}

	var drained []int
	for *take < 0 || len(drained) < *take {
		x, ok := next()
		if !ok {
			break
		}
		drained = append(drained, x)
	}
	d.Close()

	fmt.Println("range:", b)
	fmt.Println("drained:", drained)
	fmt.Println("dropped:", dropped)
	fmt.Println("remaining:", v.Slice())
	fmt.Println("state:", d.State())
	return nil
}
