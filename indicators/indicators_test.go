package indicators

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"barstream/core"
)

const eps = 1e-2

func assertSeriesClose(t *testing.T, got core.Price, want []core.Scalar) {
	t.Helper()
	require.Equal(t, len(want), got.Len())
	for i, w := range want {
		v, ok := got.At(i)
		if !ok {
			continue
		}
		assert.InDelta(t, w, v, eps, "position %d", i)
	}
}

func TestRSI(t *testing.T) {
	source := core.Of[core.Scalar](
		6.8445, 6.8560, 6.8565, 6.8590, 6.8530, 6.8575, 6.855, 6.858, 6.86, 6.8480, 6.8575,
		6.864, 6.8565, 6.8455, 6.8450, 6.8365, 6.8310, 6.8355, 6.8360, 6.8345, 6.8285, 6.8395,
	)
	got := RSI(source, core.SmoothSMMA, 3)
	want := []core.Scalar{
		100.0, 100.0, 100.0, 100.0, 46.885506, 66.75195, 50.889442, 65.60162, 73.53246,
		23.915344, 57.76078, 71.00006, 46.02974, 25.950226, 25.200401, 14.512299, 10.280083,
		33.926575, 36.707954, 30.863396, 15.785042, 64.06485,
	}
	assertSeriesClose(t, got, want)
}

func TestRSIBounds(t *testing.T) {
	up := core.Empty[core.Scalar](12)
	down := core.Empty[core.Scalar](12)
	for i := 0; i < 12; i++ {
		up.Set(i, 10+core.Scalar(i))
		down.Set(i, 50-core.Scalar(i))
	}

	rising := RSI(up, core.SmoothSMMA, 3)
	for i := 0; i < rising.Len(); i++ {
		v, ok := rising.At(i)
		if !ok {
			continue
		}
		assert.InDelta(t, 100, v, eps, "position %d", i)
	}

	falling := RSI(down, core.SmoothSMMA, 3)
	for i := 4; i < falling.Len(); i++ {
		v, ok := falling.At(i)
		if !ok {
			continue
		}
		assert.GreaterOrEqual(t, v, core.Scalar(0), "position %d", i)
		assert.Less(t, v, core.Scalar(1), "position %d", i)
	}
}

func TestMACD(t *testing.T) {
	source := core.Of[core.Scalar](2.0, 4.0, 6.0, 8.0, 10.0, 9.0, 8.0, 7.0, 6.0, 5.0)
	line, signal, hist := MACD(source, core.SmoothEMA, 3, 5, 4)
	assertSeriesClose(t, line, []core.Scalar{0.0, 0.33333, 0.72222, 1.0648, 1.334877, 1.035751, 0.596751, 0.184292, -0.150576, -0.403769})
	assertSeriesClose(t, signal, []core.Scalar{0.0, 0.13333, 0.36888, 0.6472, 0.9223, 0.9676, 0.8193, 0.5653, 0.2789, 0.0058})
	assertSeriesClose(t, hist, []core.Scalar{0.0, 0.1999, 0.3533, 0.4175, 0.4125, 0.068, -0.2222, -0.381, -0.4295, -0.4096})
}

func TestSTC(t *testing.T) {
	source := core.Of[core.Scalar](
		1.3626, 1.3630, 1.3637, 1.3653, 1.3692, 1.3689, 1.3719, 1.3715, 1.3732, 1.3701, 1.3730, 1.3742,
	)
	got := STC(source, core.SmoothEMA, 2, 3, 2, 0.5)
	want := []core.Scalar{0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 50.0, 25.0, 62.5, 31.25, 65.625, 82.8125}
	assertSeriesClose(t, got, want)
}

func TestPPO(t *testing.T) {
	source := core.Of[core.Scalar](2.0846, 2.0881, 2.0889, 2.0896, 2.0875, 2.0904, 2.0909, 2.0936)
	got := PPO(source, core.SmoothEMA, 2, 3)
	want := []core.Scalar{0.0, 0.027963202, 0.029670628, 0.025649877, -0.000331128, 0.018578414, 0.019517785, 0.034671485}
	assertSeriesClose(t, got, want)
}

func TestStochOsc(t *testing.T) {
	high := core.Of[core.Scalar](3.0, 3.0, 3.0, 3.0, 3.0)
	low := core.Of[core.Scalar](1.0, 1.0, 1.0, 1.0, 1.0)
	close := core.Of[core.Scalar](2.0, 2.5, 2.0, 1.5, 2.0)
	k, d := StochOsc(close, high, low, core.SmoothSMA, 3, 3, 3)
	assertSeriesClose(t, k, []core.Scalar{50.0, 62.5, 58.3333, 50.0, 41.6666})
	assertSeriesClose(t, d, []core.Scalar{50.0, 56.25, 56.9444, 56.9444, 50.0})
}

func TestDSO(t *testing.T) {
	close := core.Of[core.Scalar](4.9112, 4.9140, 4.9135, 4.9151, 4.9233, 4.9313, 4.9357)
	k, d := DSO(close, core.SmoothEMA, 3, 2, 2)
	assertSeriesClose(t, k, []core.Scalar{0.0, 66.66667, 88.88889, 96.2963, 98.76544, 99.588486, 99.86283})
	assertSeriesClose(t, d, []core.Scalar{0.0, 44.44445, 74.07408, 88.8889, 95.47326, 98.21674, 99.31413})
}

func TestSSO(t *testing.T) {
	high := core.Of[core.Scalar](3.0, 3.0, 3.0, 3.0, 3.0)
	low := core.Of[core.Scalar](1.0, 1.0, 1.0, 1.0, 1.0)
	close := core.Of[core.Scalar](2.0, 2.5, 2.0, 1.5, 2.0)
	k, d := SSO(close, high, low, core.SmoothWMA, 3, 3)
	assertSeriesClose(t, k, []core.Scalar{0.0, 0.0, 58.333336, 41.666668, 41.666668})
	assertSeriesClose(t, d, []core.Scalar{0.0, 0.0, 0.0, 0.0, 44.444447})
}

func TestDI(t *testing.T) {
	source := core.Of[core.Scalar](
		6.858, 6.86, 6.8480, 6.8575, 6.864, 6.8565, 6.8455, 6.8450, 6.8365, 6.8310, 6.8355,
		6.8360, 6.8345, 6.8285, 6.8395,
	)
	got := DI(source, core.SmoothWMA, 3)
	want := []core.Scalar{
		0, 0, -0.08268177, 0.040116996, 0.07046368, -0.038874596, -0.0985024,
		-0.030419156, -0.06334749, -0.0609653, 0.01951538, 0.01462254, -0.009752775,
		-0.04756681, 0.0658433,
	}
	assertSeriesClose(t, got, want)
}

func TestTII(t *testing.T) {
	source := core.Of[core.Scalar](
		6.858, 6.86, 6.8480, 6.8575, 6.864, 6.8565, 6.8455, 6.8450, 6.8365, 6.8310, 6.8355,
		6.8360, 6.8345, 6.8285, 6.8395,
	)
	got := TII(source, core.SmoothSMA, 4, 2)
	want := []core.Scalar{
		0.0, 100.0, 11.999313, 18.140203, 100.0, 100.0, 0.0, 0.0, 0.0, 0.0, 0.0, 45.4577,
		100.0, 4.648687, 48.748272,
	}
	assertSeriesClose(t, got, want)
}

func TestMAD(t *testing.T) {
	source := core.Of[core.Scalar](
		6.858, 6.86, 6.8480, 6.8575, 6.864, 6.8565, 6.8455, 6.8450, 6.8365, 6.8310, 6.8355,
		6.8360, 6.8345, 6.8285, 6.8395,
	)
	got := MAD(source, 2, 3)
	want := []core.Scalar{
		0.0, 0.0, -0.019448167, -0.035259355, 0.0619857, 0.01336108, -0.0632135,
		-0.05474333, -0.023143804, -0.05484238, -0.015844958, 0.023157505, -0.0012138351,
		-0.021954188, -0.002449016,
	}
	assertSeriesClose(t, got, want)
}

func TestREX(t *testing.T) {
	source := core.Of[core.Scalar](2.0310, 2.0282, 1.9937, 1.9795, 1.9632)
	open := core.Of[core.Scalar](2.0505, 2.0310, 2.0282, 1.9937, 1.9795)
	high := core.Of[core.Scalar](2.0507, 2.0310, 2.0299, 1.9977, 1.9824)
	low := core.Of[core.Scalar](2.0174, 2.0208, 1.9928, 1.9792, 1.9616)
	got := REX(source, open, high, low, core.SmoothEMA, 3)
	want := []core.Scalar{-0.025600433, -0.011900425, -0.040849924, -0.036474824, -0.035187542}
	assertSeriesClose(t, got, want)
}

func TestWPRRange(t *testing.T) {
	high := core.Of[core.Scalar](3.0, 3.2, 3.1, 3.4, 3.3, 3.5)
	low := core.Of[core.Scalar](1.0, 1.1, 0.9, 1.3, 1.2, 1.4)
	close := core.Of[core.Scalar](2.0, 2.5, 2.0, 1.5, 2.0, 3.1)
	got := WPR(close, high, low, 3)
	for i := 0; i < got.Len(); i++ {
		v, ok := got.At(i)
		if !ok {
			continue
		}
		assert.LessOrEqual(t, v, core.Scalar(0), "position %d", i)
		assert.GreaterOrEqual(t, v, core.Scalar(-100), "position %d", i)
	}
}

func TestTRIXConstantIsFlat(t *testing.T) {
	source := core.Fill(5, 10)
	got := TRIX(source, core.SmoothEMA, 3)
	for i := 1; i < got.Len(); i++ {
		v, ok := got.At(i)
		require.True(t, ok, "position %d", i)
		assert.InDelta(t, 0, v, eps)
	}
}

func TestATR(t *testing.T) {
	high := core.Of[core.Scalar](
		6.5600, 6.6049, 6.5942, 6.5541, 6.5300, 6.5700, 6.5630, 6.5362, 6.5497, 6.5480, 6.5325,
		6.5065, 6.4866, 6.5536, 6.5142, 6.5294,
	)
	low := core.Of[core.Scalar](
		6.5418, 6.5394, 6.5301, 6.4782, 6.4882, 6.5131, 6.5126, 6.5184, 6.5206, 6.5229, 6.4982,
		6.4560, 6.4614, 6.4798, 6.4903, 6.5066,
	)
	close := core.Of[core.Scalar](
		6.5541, 6.5942, 6.5348, 6.4950, 6.5298, 6.5616, 6.5223, 6.5300, 6.5452, 6.5254, 6.5038,
		6.4614, 6.4854, 6.4966, 6.5117, 6.5270,
	)
	got := ATR(high, low, close, core.SmoothSMMA, 3)
	want := []core.Scalar{
		0.01819992, 0.03396654, 0.044011116, 0.05464077, 0.05036052, 0.05254035, 0.051826984,
		0.040484603, 0.036689714, 0.032826394, 0.033317544, 0.039045, 0.03442996, 0.047553174,
		0.03966879, 0.03404585,
	}
	assertSeriesClose(t, got, want)
	for i := 0; i < got.Len(); i++ {
		v, ok := got.At(i)
		require.True(t, ok)
		assert.GreaterOrEqual(t, v, core.Scalar(0))
	}
}

func TestBBands(t *testing.T) {
	source := core.Of[core.Scalar](2.0, 4.0, 6.0, 8.0, 10.0, 9.0, 8.0, 7.0, 6.0, 5.0)
	upper, middle, lower := BBands(source, core.SmoothSMA, 3, 2.0)
	assertSeriesClose(t, upper, []core.Scalar{2.0, 5.0, 7.265986, 9.265986, 11.265986, 10.632993, 10.632993, 9.632993, 8.632993, 7.632993})
	assertSeriesClose(t, middle, []core.Scalar{2.0, 3.0, 4.0, 6.0, 8.0, 9.0, 9.0, 8.0, 7.0, 6.0})
	assertSeriesClose(t, lower, []core.Scalar{2.0, 1.0, 0.734014, 2.734014, 4.734014, 7.367007, 7.367007, 6.367007, 5.367007, 4.367007})
}

func TestBBW(t *testing.T) {
	source := core.Of[core.Scalar](2.0, 4.0, 6.0, 8.0, 10.0, 9.0, 8.0, 7.0, 6.0, 5.0)
	got := BBW(source, core.SmoothSMA, 3, 2.0)
	want := []core.Scalar{
		0.0, 133.33334, 163.2993, 108.86625, 81.649613, 36.288664, 36.288664, 40.824747,
		46.65699, 54.433155,
	}
	assertSeriesClose(t, got, want)
}

func TestKeltnerOrdering(t *testing.T) {
	high := core.Of[core.Scalar](19.129, 19.116, 19.154, 19.195, 19.217, 19.285, 19.341, 19.394, 19.450)
	low := core.Of[core.Scalar](19.090, 19.086, 19.074, 19.145, 19.141, 19.155, 19.219, 19.306, 19.355)
	close := core.Of[core.Scalar](19.102, 19.100, 19.146, 19.181, 19.155, 19.248, 19.309, 19.355, 19.439)
	hlc3 := core.DivScalar(core.Add(core.Add(high, low), close), 3)
	atr := ATR(high, low, close, core.SmoothSMMA, 3)

	upper, middle, lower := Keltner(hlc3, atr, core.SmoothEMA, 3, 2.0)
	for i := 0; i < close.Len(); i++ {
		u, uok := upper.At(i)
		m, mok := middle.At(i)
		l, lok := lower.At(i)
		if !uok || !mok || !lok {
			continue
		}
		assert.GreaterOrEqual(t, u, m, "position %d", i)
		assert.GreaterOrEqual(t, m, l, "position %d", i)
	}

	pct := KeltnerP(hlc3, atr, core.SmoothEMA, 3, 2.0)
	width := KeltnerW(hlc3, atr, core.SmoothEMA, 3, 2.0)
	assert.Equal(t, close.Len(), pct.Len())
	assert.Equal(t, close.Len(), width.Len())
}

func TestPPBOrdering(t *testing.T) {
	high := core.Of[core.Scalar](19.129, 19.116, 19.154, 19.195, 19.217, 19.285, 19.341, 19.394, 19.450)
	low := core.Of[core.Scalar](19.090, 19.086, 19.074, 19.145, 19.141, 19.155, 19.219, 19.306, 19.355)
	close := core.Of[core.Scalar](19.102, 19.100, 19.146, 19.181, 19.155, 19.248, 19.309, 19.355, 19.439)

	upper, middle, lower := PPB(close, high, low, core.SmoothSMA, 3, 2.0)
	for i := 0; i < close.Len(); i++ {
		u, uok := upper.At(i)
		m, mok := middle.At(i)
		l, lok := lower.At(i)
		if !uok || !mok || !lok {
			continue
		}
		assert.GreaterOrEqual(t, u, m, "position %d", i)
		assert.GreaterOrEqual(t, m, l, "position %d", i)
	}
}

func TestSNATRNonNegative(t *testing.T) {
	high := core.Of[core.Scalar](19.129, 19.116, 19.154, 19.195, 19.217, 19.285, 19.341, 19.394, 19.450)
	low := core.Of[core.Scalar](19.090, 19.086, 19.074, 19.145, 19.141, 19.155, 19.219, 19.306, 19.355)
	close := core.Of[core.Scalar](19.102, 19.100, 19.146, 19.181, 19.155, 19.248, 19.309, 19.355, 19.439)
	got := SNATR(high, low, close, 3, 3)
	for i := 0; i < got.Len(); i++ {
		if v, ok := got.At(i); ok {
			assert.GreaterOrEqual(t, v, core.Scalar(0), "position %d", i)
		}
	}
}

func TestCHOP(t *testing.T) {
	high := core.Of[core.Scalar](2.0859, 2.0881, 2.0889, 2.0896, 2.0896, 2.0907)
	low := core.Of[core.Scalar](2.0846, 2.0846, 2.0881, 2.0886, 2.0865, 2.0875)
	close := core.Of[core.Scalar](2.0846, 2.0881, 2.0889, 2.0896, 2.0875, 2.0904)
	atr := ATR(high, low, close, core.SmoothSMMA, 1)
	got := CHOP(high, low, atr, 2)
	want := []core.Scalar{0.0, 45.571022, 0.0, 26.31491, 40.33963, 58.496246}
	assertSeriesClose(t, got, want)
}

func TestCAMA(t *testing.T) {
	high := core.Of[core.Scalar](7.1135, 7.1135, 7.116, 7.1225, 7.121, 7.136, 7.142, 7.1405, 7.1125, 7.1360)
	low := core.Of[core.Scalar](7.0935, 7.088, 7.088, 7.1075, 7.1135, 7.1185, 7.119, 7.112, 7.1, 7.1055)
	close := core.Of[core.Scalar](7.1135, 7.088, 7.112, 7.1205, 7.1195, 7.136, 7.1405, 7.112, 7.1095, 7.1220)
	tr := TR(high, low, close)
	got := CAMA(close, high, low, tr, 2)
	want := []core.Scalar{
		7.1135, 7.099209, 7.105903, 7.1176147, 7.1188717, 7.1342874, 7.1378927, 7.1228094,
		7.1096625, 7.1199923,
	}
	assertSeriesClose(t, got, want)
}

func TestFRAMA(t *testing.T) {
	high := core.Of[core.Scalar](18.904, 18.988, 18.992, 18.979, 18.941)
	low := core.Of[core.Scalar](18.825, 18.866, 18.950, 18.912, 18.877)
	close := core.Of[core.Scalar](18.889, 18.966, 18.963, 18.922, 18.940)
	got := FRAMA(high, low, close, 3)
	want := []core.Scalar{18.889, 18.9275, 18.94525, 18.939285, 18.939308}
	assertSeriesClose(t, got, want)
}

func TestZLSMATracksLinearRamp(t *testing.T) {
	n := 20
	ramp := core.Empty[core.Scalar](n)
	for i := 0; i < n; i++ {
		ramp.Set(i, 2+0.5*core.Scalar(i))
	}
	got := ZLSMA(ramp, 5)
	for i := 10; i < n; i++ {
		v, ok := got.At(i)
		require.True(t, ok, "position %d", i)
		w, _ := ramp.At(i)
		assert.InDelta(t, w, v, eps, "position %d", i)
	}
}

func TestSupertrendDirectionInUptrend(t *testing.T) {
	n := 30
	high := core.Empty[core.Scalar](n)
	low := core.Empty[core.Scalar](n)
	close := core.Empty[core.Scalar](n)
	for i := 0; i < n; i++ {
		p := 10 + core.Scalar(i)
		high.Set(i, p+0.5)
		low.Set(i, p-0.5)
		close.Set(i, p)
	}
	hl2 := core.DivScalar(core.Add(high, low), 2)
	atr := ATR(high, low, close, core.SmoothSMMA, 5)

	direction, trendline := Supertrend(hl2, close, atr, 2)
	require.Equal(t, n, direction.Len())
	require.Equal(t, n, trendline.Len())

	d, ok := direction.At(n - 1)
	require.True(t, ok)
	assert.Equal(t, core.Scalar(1), d, "steady uptrend should latch +1")

	c, _ := close.At(n - 1)
	tl, tok := trendline.At(n - 1)
	require.True(t, tok)
	assert.Less(t, tl, c, "trendline should trail below price in an uptrend")
}

func TestASTTrendLatches(t *testing.T) {
	high := core.Of[core.Scalar](2.0859, 2.0881, 2.0889, 2.0896, 2.0896, 2.0907, 2.0919, 2.1004, 2.0936)
	low := core.Of[core.Scalar](2.0846, 2.0846, 2.0881, 2.0886, 2.0865, 2.0875, 2.0886, 2.0909, 2.0899)
	close := core.Of[core.Scalar](2.0846, 2.0881, 2.0889, 2.0896, 2.0875, 2.0904, 2.0909, 2.0936, 2.0912)
	atr := ATR(high, low, close, core.SmoothSMMA, 2)

	direction, trend := AST(close, atr, 3)
	require.Equal(t, close.Len(), trend.Len())
	for i := 0; i < direction.Len(); i++ {
		if v, ok := direction.At(i); ok {
			assert.Contains(t, []core.Scalar{-1, 0, 1}, v, "position %d", i)
		}
	}
}

func TestDMIADXBounds(t *testing.T) {
	high := core.Of[core.Scalar](19.129, 19.116, 19.154, 19.195, 19.217, 19.285, 19.341, 19.394, 19.450)
	low := core.Of[core.Scalar](19.090, 19.086, 19.074, 19.145, 19.141, 19.155, 19.219, 19.306, 19.355)
	close := core.Of[core.Scalar](19.102, 19.100, 19.146, 19.181, 19.155, 19.248, 19.309, 19.355, 19.439)
	atr := ATR(high, low, close, core.SmoothSMMA, 3)

	adx, diPlus, diMinus := DMI(high, low, atr, 3, 3)
	for i := 0; i < adx.Len(); i++ {
		if v, ok := adx.At(i); ok {
			assert.GreaterOrEqual(t, v, core.Scalar(0), "adx position %d", i)
			assert.LessOrEqual(t, v, core.Scalar(100), "adx position %d", i)
		}
		if v, ok := diPlus.At(i); ok {
			assert.GreaterOrEqual(t, v, core.Scalar(0), "di+ position %d", i)
		}
		if v, ok := diMinus.At(i); ok {
			assert.GreaterOrEqual(t, v, core.Scalar(0), "di- position %d", i)
		}
	}
}

func TestMFI(t *testing.T) {
	hlc3 := core.Of[core.Scalar](2.0, 2.1666, 2.0, 1.8333, 2.0)
	volume := core.Of[core.Scalar](1.0, 1.0, 1.0, 1.0, 1.0)
	got := MFI(hlc3, volume, 3)
	want := []core.Scalar{50.0, 100.0, 51.9992, 36.1106, 34.2859}
	assertSeriesClose(t, got, want)
}

func TestCMF(t *testing.T) {
	high := core.Of[core.Scalar](19.129, 19.116, 19.154, 19.195, 19.217, 19.285, 19.341, 19.394, 19.450)
	low := core.Of[core.Scalar](19.090, 19.086, 19.074, 19.145, 19.141, 19.155, 19.219, 19.306, 19.355)
	close := core.Of[core.Scalar](19.102, 19.100, 19.146, 19.181, 19.155, 19.248, 19.309, 19.355, 19.439)
	volume := core.Of[core.Scalar](3798.0, 5415.0, 7110.0, 2172.0, 7382.0, 2755.0, 2130.0, 21988.0, 9441.0)
	got := CMF(high, low, close, volume, 3)
	want := []core.Scalar{
		-0.384653, -0.19773456, 0.23686658, 0.42749897, 0.11890911,
		-0.20471762, -0.20077449, 0.17482522, 0.32079986,
	}
	assertSeriesClose(t, got, want)
}

func TestEOM(t *testing.T) {
	high := core.Of[core.Scalar](2.0859, 2.0881, 2.0889, 2.0896, 2.0896, 2.0907)
	low := core.Of[core.Scalar](2.0846, 2.0846, 2.0881, 2.0886, 2.0865, 2.0875)
	volume := core.Of[core.Scalar](528.0, 69.0, 136.0, 78.0, 353.0, 59.0)
	hl2 := core.MulScalar(core.Add(high, low), 0.5)
	got := EOM(hl2, high, low, volume, 2, 10000.0)
	want := []core.Scalar{0.0, 0.00027900035, 0.00034224786, 0.00010170654, -0.000007647926, 0.00023862119}
	assertSeriesClose(t, got, want)
}

func TestVWAP(t *testing.T) {
	high := core.Of[core.Scalar](2.0, 4.0, 6.0)
	low := core.Of[core.Scalar](1.0, 2.0, 3.0)
	close := core.Of[core.Scalar](1.5, 3.0, 4.5)
	volume := core.Of[core.Scalar](100.0, 200.0, 300.0)
	hlc3 := core.DivScalar(core.Add(core.Add(high, low), close), 3)
	got := VWAP(hlc3, volume)
	assertSeriesClose(t, got, []core.Scalar{1.5, 2.5, 3.5})
}

func TestGKYZ(t *testing.T) {
	open := core.Of[core.Scalar](1.0, 2.0, 3.0, 4.0, 5.0)
	high := core.Of[core.Scalar](1.0, 2.0, 3.0, 4.0, 5.0)
	low := core.Of[core.Scalar](3.0, 2.0, 3.0, 4.0, 5.0)
	close := core.Of[core.Scalar](1.0, 2.0, 3.0, 4.0, 5.0)
	got := GKYZ(open, high, low, close, 3)
	want := []core.Scalar{0.0, 0.60109, 0.6450658, 0.49248216, 0.31461933}
	assertSeriesClose(t, got, want)
}

func TestPP(t *testing.T) {
	high := core.Of[core.Scalar](
		6.5600, 6.6049, 6.5942, 6.5541, 6.5300, 6.5700, 6.5630, 6.5362, 6.5497, 6.5480, 6.5325,
		6.5065, 6.4866, 6.5536, 6.5142, 6.5294,
	)
	low := core.Of[core.Scalar](
		6.5418, 6.5394, 6.5301, 6.4782, 6.4882, 6.5131, 6.5126, 6.5184, 6.5206, 6.5229, 6.4982,
		6.4560, 6.4614, 6.4798, 6.4903, 6.5066,
	)
	close := core.Of[core.Scalar](
		6.5541, 6.5942, 6.5348, 6.4950, 6.5298, 6.5616, 6.5223, 6.5300, 6.5452, 6.5254, 6.5038,
		6.4614, 6.4854, 6.4966, 6.5117, 6.5270,
	)
	support, resistance := PP(high, low, close)
	assertSeriesClose(t, support, []core.Scalar{
		6.5439324, 6.5541005, 6.5118666, 6.4641, 6.5020003, 6.526467, 6.5022664, 6.5202003,
		6.5273, 6.5162005, 6.4905, 6.4427676, 6.469, 6.4663997, 6.4966, 6.5126,
	})
	assertSeriesClose(t, resistance, []core.Scalar{
		6.5621324, 6.6196003, 6.575967, 6.54, 6.5438004, 6.583367, 6.5526667, 6.538, 6.5564,
		6.5413003, 6.5248, 6.4932675, 6.4941998, 6.5401993, 6.5205, 6.5354,
	})
}

func TestFibonacciPP(t *testing.T) {
	high := core.Of[core.Scalar](
		6.5600, 6.6049, 6.5942, 6.5541, 6.5300, 6.5700, 6.5630, 6.5362, 6.5497, 6.5480, 6.5325,
		6.5065, 6.4866, 6.5536, 6.5142, 6.5294,
	)
	low := core.Of[core.Scalar](
		6.5418, 6.5394, 6.5301, 6.4782, 6.4882, 6.5131, 6.5126, 6.5184, 6.5206, 6.5229, 6.4982,
		6.4560, 6.4614, 6.4798, 6.4903, 6.5066,
	)
	close := core.Of[core.Scalar](
		6.5541, 6.5942, 6.5348, 6.4950, 6.5298, 6.5616, 6.5223, 6.5300, 6.5452, 6.5254, 6.5038,
		6.4614, 6.4854, 6.4966, 6.5117, 6.5270,
	)
	support, resistance := FibonacciPP(high, low, close)
	assertSeriesClose(t, support, []core.Scalar{
		6.545014, 6.554479, 6.5285473, 6.4801064, 6.5000324, 6.526498, 6.5133805, 6.5214005,
		6.527384, 6.522512, 6.4983974, 6.455343, 6.4681735, 6.481808, 6.49627, 6.5122905,
	})
	assertSeriesClose(t, resistance, []core.Scalar{
		6.5589185, 6.6045213, 6.5775194, 6.5380936, 6.531968, 6.569969, 6.551886, 6.535,
		6.549616, 6.5416884, 6.5246024, 6.4939246, 6.4874263, 6.5381913, 6.51453, 6.5297093,
	})
}

func TestWoodiePP(t *testing.T) {
	open := core.Of[core.Scalar](
		6.5541, 6.5942, 6.5345, 6.4950, 6.5298, 6.5619, 6.5223, 6.5300, 6.5451, 6.5254, 6.5038,
		6.4614, 6.4853, 6.4966, 6.5117, 6.5272,
	)
	high := core.Of[core.Scalar](
		6.5600, 6.6049, 6.5942, 6.5541, 6.5300, 6.5700, 6.5630, 6.5362, 6.5497, 6.5480, 6.5325,
		6.5065, 6.4866, 6.5536, 6.5142, 6.5294,
	)
	low := core.Of[core.Scalar](
		6.5418, 6.5394, 6.5301, 6.4782, 6.4882, 6.5131, 6.5126, 6.5184, 6.5206, 6.5229, 6.4982,
		6.4560, 6.4614, 6.4798, 6.4903, 6.5066,
	)
	support, resistance := WoodiePP(open, high, low)
	assertSeriesClose(t, support, []core.Scalar{
		6.5449996, 6.5614505, 6.50245, 6.4570503, 6.5089, 6.5334506, 6.4970994, 6.5211005,
		6.53055, 6.5128503, 6.48665, 6.43615, 6.4727, 6.4597, 6.49975, 6.5158005,
	})
	assertSeriesClose(t, resistance, []core.Scalar{
		6.5631995, 6.6269503, 6.5665503, 6.5329504, 6.5507, 6.5903506, 6.5474997, 6.5389004,
		6.55965, 6.53795, 6.52095, 6.48665, 6.4979, 6.5334997, 6.52365, 6.5386004,
	})
}

func TestCamarillaPP(t *testing.T) {
	high := core.Of[core.Scalar](
		6.5600, 6.6049, 6.5942, 6.5541, 6.5300, 6.5700, 6.5630, 6.5362, 6.5497, 6.5480, 6.5325,
		6.5065, 6.4866, 6.5536, 6.5142, 6.5294,
	)
	low := core.Of[core.Scalar](
		6.5418, 6.5394, 6.5301, 6.4782, 6.4882, 6.5131, 6.5126, 6.5184, 6.5206, 6.5229, 6.4982,
		6.4560, 6.4614, 6.4798, 6.4903, 6.5066,
	)
	close := core.Of[core.Scalar](
		6.5541, 6.5942, 6.5348, 6.4950, 6.5298, 6.5616, 6.5223, 6.5300, 6.5452, 6.5254, 6.5038,
		6.4614, 6.4854, 6.4966, 6.5117, 6.5270,
	)
	support, resistance := CamarillaPP(high, low, close)
	assertSeriesClose(t, support, []core.Scalar{
		6.5524316, 6.588196, 6.528924, 6.4880424, 6.525968, 6.5563846, 6.5176797, 6.5283685,
		6.5425324, 6.5230994, 6.5006557, 6.456771, 6.4830904, 6.4898353, 6.509509, 6.52491,
	})
	assertSeriesClose(t, resistance, []core.Scalar{
		6.5557685, 6.6002045, 6.540676, 6.5019574, 6.533632, 6.566816, 6.52692, 6.531632,
		6.5478673, 6.527701, 6.506944, 6.466029, 6.48771, 6.503365, 6.513891, 6.52909,
	})
}

func TestDemarkPP(t *testing.T) {
	open := core.Of[core.Scalar](
		6.5541, 6.5942, 6.5345, 6.4950, 6.5298, 6.5619, 6.5223, 6.5300, 6.5451, 6.5254, 6.5038,
		6.4614, 6.4853, 6.4866, 6.5117, 6.5272,
	)
	high := core.Of[core.Scalar](
		6.5600, 6.6049, 6.5942, 6.5541, 6.5300, 6.5700, 6.5630, 6.5362, 6.5497, 6.5480, 6.5325,
		6.5065, 6.4866, 6.5536, 6.5142, 6.5294,
	)
	low := core.Of[core.Scalar](
		6.5418, 6.5394, 6.5301, 6.4782, 6.4882, 6.5131, 6.5126, 6.5184, 6.5206, 6.5229, 6.4982,
		6.4560, 6.4614, 6.4798, 6.4903, 6.5066,
	)
	close := core.Of[core.Scalar](
		6.5541, 6.5942, 6.5348, 6.4950, 6.5298, 6.5616, 6.5223, 6.5300, 6.5452, 6.5254, 6.5038,
		6.4614, 6.4854, 6.4966, 6.5117, 6.5270,
	)
	support, resistance := DemarkPP(open, high, low, close)
	assertSeriesClose(t, support, []core.Scalar{
		6.5449996, 6.5614505, 6.5324497, 6.4570503, 6.5089, 6.5089, 6.4970994, 6.5211005,
		6.5329, 6.5128503, 6.48665, 6.43615, 6.473401, 6.4881997, 6.49975, 6.5053997,
	})
	assertSeriesClose(t, resistance, []core.Scalar{
		6.5631995, 6.6269503, 6.59655, 6.5329504, 6.5507, 6.5658, 6.5474997, 6.5389004, 6.562,
		6.53795, 6.52095, 6.48665, 6.498601, 6.5619993, 6.52365, 6.5281997,
	})
}

func TestSmoothedPP(t *testing.T) {
	high := core.Of[core.Scalar](
		6.5600, 6.6049, 6.5942, 6.5541, 6.5300, 6.5700, 6.5630, 6.5362, 6.5497, 6.5480, 6.5325,
		6.5065, 6.4866, 6.5536, 6.5142, 6.5294,
	)
	low := core.Of[core.Scalar](
		6.5418, 6.5394, 6.5301, 6.4782, 6.4882, 6.5131, 6.5126, 6.5184, 6.5206, 6.5229, 6.4982,
		6.4560, 6.4614, 6.4798, 6.4903, 6.5066,
	)
	close := core.Of[core.Scalar](
		6.5541, 6.5942, 6.5348, 6.4950, 6.5298, 6.5616, 6.5223, 6.5300, 6.5452, 6.5254, 6.5038,
		6.4614, 6.4854, 6.4966, 6.5117, 6.5270,
	)
	support, resistance := SmoothedPP(high, low, close, core.SmoothSMA, 3)
	assertSeriesClose(t, support, []core.Scalar{
		6.5439324, 6.4990325, 6.4990325, 6.4780555, 6.467311, 6.4813333, 6.4813333, 6.4813333,
		6.5010676, 6.518056, 6.498766, 6.452577, 6.448855, 6.427755, 6.427755, 6.440223,
	})
	assertSeriesClose(t, resistance, []core.Scalar{
		6.5621324, 6.6062336, 6.615534, 6.6674337, 6.6524887, 6.6047554, 6.5758677, 6.5677786,
		6.5677786, 6.5619783, 6.5738664, 6.611756, 6.592466, 6.544577, 6.5471992, 6.55031,
	})
}
