package advisor

import (
	"fmt"
	"strings"
)

const skinAnalysisPrompt = "Bu cilt fotoğrafını analiz et ve genel cilt durumu hakkında (kuru, yağlı, gözenekli vb.) kısa bir yorum yap ve bizim hizmetlerimizden hangisinin uygun olacağını belirt."

func advicePrompt(userPrompt string, serviceNames []string) string {
	return fmt.Sprintf(`Kullanıcı şu soruyu sordu: "%s".
Lumina Beauty Salon'da şu hizmetler mevcut: %s.
Lütfen kullanıcıya profesyonel, nazik ve bilgilendirici bir cevap ver. Mevcut hizmetlerimizden birini önerebilirsin.
Yanıtını samimi bir güzellik uzmanı diliyle ver.`, userPrompt, strings.Join(serviceNames, ", "))
}
