package pge

// fontData packs the 128x48 built-in font. Every 4 characters hold 24 bits,
// 6 bits per character offset from '0'.
const fontData = "" +
	"?Q`0001oOch0o01o@F40o0<AGD4090LAGD<090@A7ch0?00O7Q`0600>00000000" +
	"O000000nOT0063Qo4d8>?7a14Gno94AA4gno94AaOT0>o3`oO400o7QN00000400" +
	"Of80001oOg<7O7moBGT7O7lABET024@aBEd714AiOdl717a_=TH013Q>00000000" +
	"720D000V?V5oB3Q_HdUoE7a9@DdDE4A9@DmoE4A;Hg]oM4Aj8S4D84@`00000000" +
	"OaPT1000Oa`^13P1@AI[?g`1@A=[OdAoHgljA4Ao?WlBA7l1710007l100000000" +
	"ObM6000oOfMV?3QoBDD`O7a0BDDH@5A0BDD<@5A0BGeVO5ao@CQR?5Po00000000" +
	"Oc``000?Ogij70PO2D]??0Ph2DUM@7i`2DTg@7lh2GUj?0TO0C1870T?00000000" +
	"70<4001o?P<7?1QoHg43O;`h@GT0@:@LB@d0>:@hN@L0@?aoN@<0O7ao0000?000" +
	"OcH0001SOglLA7mg24TnK7ln24US>0PL24U140PnOgl0>7QgOcH0K71S0000A000" +
	"00H00000@Dm1S007@DUSg00?OdTnH7YhOfTL<7Yh@Cl0700?@Ah0300700000000" +
	"<008001QL00ZA41a@6HnI<1i@FHLM81M@@0LG81?O`0nC?Y7?`0ZA7Y300080000" +
	"O`082000Oh0827mo6>Hn?Wmo?6HnMb11MP08@C11H`08@FP0@@0004@000000000" +
	"00P00001Oab00003OcKP0006@6=PMgl<@440MglH@000000`@000001P00000000" +
	"Ob@8@@00Ob@8@Ga13R@8Mga172@8?PAo3R@827QoOb@820@0O`0007`0000007P0" +
	"O`000P08Od400g`<3V=P0G`673IP0`@3>1`00P@6O`P00g`<O`000GP800000000" +
	"?P9PL020O`<`N3R0@E4HC7b0@ET<ATB0@@l6C4B0O`H3N7b0?P01L3R000000020"

const (
	fontWidth  = 128
	fontHeight = 48
	glyphSize  = 8
	glyphCols  = fontWidth / glyphSize
)

// newFontSprite decodes fontData. Bits fill the canvas column by column, 48
// pixels per column; each lit bit becomes 255 in all four channels.
func newFontSprite() *Sprite {
	s, err := NewSprite(fontWidth, fontHeight)
	if err != nil {
		panic(err)
	}

	px, py := 0, 0
	for b := 0; b < len(fontData); b += 4 {
		r := uint32(fontData[b]-48)<<18 |
			uint32(fontData[b+1]-48)<<12 |
			uint32(fontData[b+2]-48)<<6 |
			uint32(fontData[b+3]-48)

		for i := 0; i < 24; i++ {
			var k uint8
			if r&(1<<i) != 0 {
				k = 255
			}
			off := (py*fontWidth + px) * 4
			s.pix[off], s.pix[off+1], s.pix[off+2], s.pix[off+3] = k, k, k, k
			py++
			if py == fontHeight {
				px++
				py = 0
			}
		}
	}
	return s
}

// glyphOrigin returns the top-left font pixel of the glyph for r.
func glyphOrigin(r rune) (int, int, error) {
	if r < 32 || r > 127 {
		return 0, 0, errorf("Unsupported glyph: %U", r)
	}
	code := int(r) - 32
	return (code % glyphCols) * glyphSize, (code / glyphCols) * glyphSize, nil
}
