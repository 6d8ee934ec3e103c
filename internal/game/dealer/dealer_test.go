package dealer

import (
	"testing"

	"CardGame/internal/game/card"
	"CardGame/internal/game/random"

	"github.com/stretchr/testify/assert"
)

// recorder 记录收到的牌
type recorder struct {
	got []card.Card
}

func (r *recorder) DealCard(c card.Card) {
	r.got = append(r.got, c)
}

func checkCards(t *testing.T, cards []card.Card) {
	t.Helper()
	for _, c := range cards {
		if c.Face < card.MinFace || c.Face > card.MaxFace {
			t.Fatalf("invalid face %d", c.Face)
		}
		if c.Value() != c.Category.Multiplier()*c.Face {
			t.Fatalf("card %v breaks value invariant", c)
		}
	}
}

// ✅ 测试牌组初始化
func TestNewDeck(t *testing.T) {
	d := NewDeck(12, random.New(1))
	if d.Remaining() != 12 || d.Size() != 12 {
		t.Fatalf("expected 12 cards, got %d (size %d)", d.Remaining(), d.Size())
	}
	checkCards(t, d.Cards())
}

func TestZeroAndNegativeSize(t *testing.T) {
	assert.Equal(t, 0, NewDeck(0, random.New(1)).Remaining())
	assert.Equal(t, 0, NewDeck(-4, random.New(1)).Remaining())
}

func TestNilSourceFallsBackToDefault(t *testing.T) {
	d := NewDeck(5, nil)
	assert.Equal(t, 5, d.Remaining())
}

// ✅ 洗牌总是得到 size 张新牌
func TestShuffleRefills(t *testing.T) {
	d := NewDeck(9, random.New(5))
	d.DealCards(&recorder{}, 7)
	assert.Equal(t, 2, d.Remaining())

	for i := 0; i < 20; i++ {
		d.Shuffle()
		assert.Equal(t, 9, d.Remaining())
		checkCards(t, d.Cards())
	}
}

func TestShuffleRegenerates(t *testing.T) {
	d := NewDeck(30, random.New(8))
	before := d.Cards()
	d.Shuffle()
	assert.NotEqual(t, before, d.Cards())
}

func TestSameSeedSameDeck(t *testing.T) {
	d1 := NewDeck(20, random.New(42))
	d2 := NewDeck(20, random.New(42))
	assert.Equal(t, d1.Cards(), d2.Cards())
}

// ✅ 按牌堆顺序发牌
func TestDealCardsOrder(t *testing.T) {
	d := NewDeck(6, random.New(3))
	all := d.Cards()

	r := &recorder{}
	n := d.DealCards(r, 4)

	assert.Equal(t, 4, n)
	assert.Equal(t, all[:4], r.got)
	assert.Equal(t, all[4:], d.Cards())
	assert.Equal(t, 2, d.Remaining())
}

// ✅ 牌不够时什么都不发
func TestDealCardsTooManyIsNoop(t *testing.T) {
	d := NewDeck(3, random.New(3))
	before := d.Cards()

	r := &recorder{}
	n := d.DealCards(r, 4)

	assert.Equal(t, 0, n)
	assert.Empty(t, r.got)
	assert.Equal(t, before, d.Cards())
}

func TestDealExactlyRemaining(t *testing.T) {
	d := NewDeck(3, random.New(3))
	r := &recorder{}
	assert.Equal(t, 3, d.DealCards(r, 3))
	assert.Equal(t, 0, d.Remaining())
	assert.Equal(t, 0, d.DealCards(r, 1))
	assert.Len(t, r.got, 3)
}

func TestDealZero(t *testing.T) {
	d := NewDeck(3, random.New(3))
	r := &recorder{}
	assert.Equal(t, 0, d.DealCards(r, 0))
	assert.Equal(t, 3, d.Remaining())
}

func TestString(t *testing.T) {
	d := NewDeck(0, random.New(1))
	assert.Equal(t, "[]", d.String())
}
