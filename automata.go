package rime

import (
	"context"
	"fmt"

	pool "github.com/jolestar/go-commons-pool"
)

// NfaStateFn represents a state in a non-deterministic finite automata.
// Functions of type NfaStateFn try to match a rune (Unicode code-point).
//
// The first argument is a Recognizer, which carries this state function.
//
// NfaStateFn – after matching a rune – must return another NfaStateFn,
// which will then in turn be called to process the next rune. The process
// of matching a string will stop as soon as a NfaStateFn returns nil.
type NfaStateFn func(*Recognizer, rune) NfaStateFn

// A Recognizer represents an automata to recognize a symbol, i.e. a short
// sequence of runes. Its main functionality is performed by an embedded
// NfaStateFn.
//
// Recognizer's state functions must be careful to increment MatchLen
// with each matched rune.
//
// Semantics of Expect and UserData are up to the client and not used by
// the default mechanism. Recognizers created by NewSymbolRecognizer use
// Expect for the runes of the symbol still to match and UserData for the
// priority of the symbol within its inventory.
type Recognizer struct {
	Expect   []rune      // runes still to match
	MatchLen int         // length of active match, in runes
	UserData interface{} // clients may need to store additional information
	accepted bool        // set by DoAccept
	nextStep NfaStateFn  // next step of the automata
}

// NewRecognizer creates a new Recognizer.
// This is rarely used, as clients rather should call NewPooledRecognizer().
func NewRecognizer(expect []rune, next NfaStateFn) *Recognizer {
	rec := &Recognizer{}
	rec.Expect = expect
	rec.nextStep = next
	return rec
}

// Recognizers are short-lived objects. To avoid multiple allocation of
// small objects we will pool them.
type recognizerPool struct {
	opool *pool.ObjectPool
	ctx   context.Context
}

var globalRecognizerPool *recognizerPool

func init() {
	globalRecognizerPool = &recognizerPool{}
	factory := pool.NewPooledObjectFactorySimple(
		func(context.Context) (interface{}, error) {
			rec := &Recognizer{}
			return rec, nil
		})
	globalRecognizerPool.ctx = context.Background()
	config := pool.NewDefaultPoolConfig()
	config.MaxTotal = -1 // infinity
	config.BlockWhenExhausted = false
	globalRecognizerPool.opool = pool.NewObjectPool(globalRecognizerPool.ctx, factory, config)
}

// NewPooledRecognizer returns a new Recognizer, pre-filled with expected runes
// and a state function. The Recognizer is pooled for efficiency.
func NewPooledRecognizer(expect []rune, stateFn NfaStateFn) *Recognizer {
	o, err := globalRecognizerPool.opool.BorrowObject(globalRecognizerPool.ctx)
	if err != nil {
		CT().Errorf("cannot borrow recognizer from pool: %v", err)
		return NewRecognizer(expect, stateFn)
	}
	rec := o.(*Recognizer)
	rec.Expect = expect
	rec.nextStep = stateFn
	return rec
}

// NewSymbolRecognizer returns a pooled Recognizer which accepts exactly the
// runes of sym. priority is stored as UserData.
func NewSymbolRecognizer(sym string, priority int) *Recognizer {
	rec := NewPooledRecognizer([]rune(sym), matchSymbol)
	rec.UserData = priority
	return rec
}

// Clears the Recognizer and puts it back into the pool.
func (rec *Recognizer) releaseIntoPool() {
	rec.Expect = nil
	rec.MatchLen = 0
	rec.UserData = nil
	rec.accepted = false
	rec.nextStep = nil
	_ = globalRecognizerPool.opool.ReturnObject(globalRecognizerPool.ctx, rec)
}

// Simple stringer for debugging purposes.
func (rec *Recognizer) String() string {
	if rec == nil {
		return "[nil rule]"
	}
	return fmt.Sprintf("[%q -> done=%v, len=%d]", string(rec.Expect), rec.Done(), rec.MatchLen)
}

// Unsubscribed signals to a Recognizer that it has been unsubscribed from a
// RunePublisher.
//
// Interface RuneSubscriber
func (rec *Recognizer) Unsubscribed() {
	rec.releaseIntoPool()
}

// Done is used by a Recognizer that it is done matching runes.
// If Accepted() is true it has been accepting a sequence of runes,
// otherwise it has aborted to further try a match.
//
// Interface RuneSubscriber
func (rec *Recognizer) Done() bool {
	return rec.nextStep == nil
}

// Accepted is true if the Recognizer is done and has matched its symbol.
func (rec *Recognizer) Accepted() bool {
	return rec.Done() && rec.accepted
}

// MatchLength is part of interface RuneSubscriber.
func (rec *Recognizer) MatchLength() int {
	return rec.MatchLen
}

// RuneEvent is part of interface RuneSubscriber.
func (rec *Recognizer) RuneEvent(r rune) {
	if rec.nextStep != nil {
		rec.nextStep = rec.nextStep(rec, r)
	}
}

// --- Standard Recognizer Rules ----------------------------------------

// DoAbort returns a state function which signals abort.
func DoAbort(rec *Recognizer) NfaStateFn {
	rec.MatchLen = 0
	rec.accepted = false
	return nil
}

// DoAccept returns a state function which signals accept.
func DoAccept(rec *Recognizer) NfaStateFn {
	rec.MatchLen++
	rec.accepted = true
	CT().Debugf("ACCEPT after %d runes", rec.MatchLen)
	return nil
}

// matchSymbol consumes the runes of rec.Expect one after the other.
func matchSymbol(rec *Recognizer, r rune) NfaStateFn {
	if len(rec.Expect) == 0 || rec.Expect[rec.MatchLen] != r {
		return DoAbort(rec)
	}
	if rec.MatchLen+1 == len(rec.Expect) {
		return DoAccept(rec)
	}
	rec.MatchLen++
	return matchSymbol
}

// --- Rune Publishing and Subscription ---------------------------------

// A RuneSubscriber is a receiver of rune events, i.e. messages to
// process a new code-point (rune). If they can match the rune, they
// will expect further runes, otherwise they abort. When they are finished,
// either by accepting or rejecting input, they set Done() to true.
type RuneSubscriber interface {
	RuneEvent(r rune) // receive a new code-point
	MatchLength() int // length (in # of code-points) of the match up to now
	Done() bool       // is this subscriber done?
	Unsubscribed()    // this subscriber has been unsubscribed
}

// A RunePublisher notifies subscribers with rune events: a new rune has been
// read and the subscriber – usually a recognizer – has to react to it.
// Subscribers which are done are handed to a harvest function and then
// unsubscribed.
type RunePublisher struct {
	subscribers []RuneSubscriber
	harvest     func(RuneSubscriber)
}

// NewRunePublisher creates a new RunePublisher. harvest, if non-nil, will be
// called for every subscriber which is done, right before it is unsubscribed.
func NewRunePublisher(harvest func(RuneSubscriber)) *RunePublisher {
	return &RunePublisher{harvest: harvest}
}

// SubscribeMe lets a client subscribe to a RunePublisher.
func (rpub *RunePublisher) SubscribeMe(rsub RuneSubscriber) *RunePublisher {
	rpub.subscribers = append(rpub.subscribers, rsub)
	return rpub
}

// Len returns the number of active subscribers.
func (rpub *RunePublisher) Len() int {
	return len(rpub.subscribers)
}

// PublishRuneEvent triggers a rune event notification to all subscribers and
// unsubscribes the ones which are done afterwards. It returns the longest
// active match.
func (rpub *RunePublisher) PublishRuneEvent(r rune) int {
	longest := 0
	active := rpub.subscribers[:0]
	for _, subscr := range rpub.subscribers {
		subscr.RuneEvent(r)
		if subscr.Done() {
			rpub.unsubscribe(subscr)
			continue
		}
		if d := subscr.MatchLength(); d > longest {
			longest = d
		}
		active = append(active, subscr)
	}
	for i := len(active); i < len(rpub.subscribers); i++ {
		rpub.subscribers[i] = nil
	}
	rpub.subscribers = active
	return longest
}

// Close unsubscribes all remaining subscribers, e.g. at end of input.
// They will not be harvested, as they are not done.
func (rpub *RunePublisher) Close() {
	for _, subscr := range rpub.subscribers {
		subscr.Unsubscribed()
	}
	rpub.subscribers = rpub.subscribers[:0]
}

func (rpub *RunePublisher) unsubscribe(subscr RuneSubscriber) {
	if rpub.harvest != nil {
		rpub.harvest(subscr)
	}
	subscr.Unsubscribed()
}
