package sources

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHandlerID(t *testing.T) {
	t.Run("extracts first quoted argument", func(t *testing.T) {
		handler := `fnView('1005200642', 'admin', '', '','')`
		require.Equal(t, "1005200642", HandlerID("fnView", handler))
	})

	t.Run("tolerates whitespace and double quotes", func(t *testing.T) {
		require.Equal(t, "42", HandlerID("fnView", `fnView ( "42" , "x")`))
	})

	t.Run("no matching call yields empty string", func(t *testing.T) {
		require.Equal(t, "", HandlerID("fnView", `javascript:goPage(2); return false;`))
		require.Equal(t, "", HandlerID("fnView", ""))
	})

	t.Run("different function name does not match", func(t *testing.T) {
		require.Equal(t, "", HandlerID("fnView", `fnDelete('1005200642')`))
	})
}

func TestSeqParam(t *testing.T) {
	t.Run("accepts all three quoting styles", func(t *testing.T) {
		for _, text := range []string{
			`var opts = {nttSeq=1005200644}`,
			`nttSeq='1005200644';`,
			`nttSeq="1005200644";`,
		} {
			require.Equal(t, "1005200644", SeqParam("nttSeq", text), "input: %s", text)
		}
	})

	t.Run("returns first numeric match", func(t *testing.T) {
		text := `nttSeq=111; nttSeq=222;`
		require.Equal(t, "111", SeqParam("nttSeq", text))
	})

	t.Run("non-matching text yields empty string", func(t *testing.T) {
		require.Equal(t, "", SeqParam("nttSeq", `bbsSeq=3; pageIndex=1;`))
		require.Equal(t, "", SeqParam("nttSeq", `nttSeq=abc`))
	})
}

func TestExtractNttSeq(t *testing.T) {
	page := `<script>fn_egov_select('BBS0001'); var nttSeq = "1005200644"; fnLoad();</script>`
	require.Equal(t, "1005200644", ExtractNttSeq(page))
	require.Equal(t, "", ExtractNttSeq("<script>var page = 1;</script>"))
}
