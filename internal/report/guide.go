package report

import "fmt"

// Welcome greets the user and names the selected profile.
func (r *Renderer) Welcome(user string) string {
	return fmt.Sprintf(`👋 Olá! Sou seu assistente financeiro!

👤 *Usuário:* %s

💬 *Fale naturalmente comigo:*
• "gastei 50 na padaria"
• "usei VR no restaurante, 35 reais"
• "recebi salário de 3000"
• "creditaram 600 no VR"

📊 *Consultas:*
• saldo
• extrato
• resumo

👥 *Multi-usuário:*
• usuario [nome]
• usuarios

💳 *Contas fixas:*
• conta fixa [valor] [dia] [desc]
• contas fixas

❓ Digite *ajuda* para ver todos os comandos`, user)
}

// Help is the complete command guide.
func (r *Renderer) Help() string {
	return fmt.Sprintf(`📱 *ASSISTENTE FINANCEIRO - GUIA COMPLETO*

💬 *CONVERSE NATURALMENTE:*

*Registrar gastos:*
• "gastei 50 reais no almoço"
• "paguei 30 na padaria santa tereza"
• "comprei remédio, foi 45 reais"

*Usar Vale Refeição:*
• "usei o VR, 35 reais no restaurante"
• "gastei 28 com VR na lanchonete"

*Usar Vale Alimentação:*
• "usei o VA, 120 no mercado"
• "gastei 85 com VA no supermercado"

*Registrar entradas:*
• "recebi meu salário de 3000"
• "entrou 500 do freelance"

*Creditar vales:*
• "creditaram 600 no VR"
• "caiu 300 no VA"

💰 *CONSULTAS:*
• saldo - Ver todos os saldos
• extrato - Últimas %d transações
• extrato completo - Ver TODAS
• resumo - Relatório do mês
• total - Estatísticas de transações

👥 *MULTI-USUÁRIO:*
• usuario [nome] - Trocar/criar usuário
• usuarios - Ver todos os usuários
• usuario - Ver usuário atual

💳 *CONTAS FIXAS:*
• conta fixa [valor] [dia] [desc]
  Ex: conta fixa 150 10 aluguel
• contas fixas - Ver todas as contas
• pagar conta [número] - Registrar pagamento
• remover conta [número] - Remover conta

🗑️ *GERENCIAR DADOS:*
• apagar historico - Limpa transações (mantém saldos)
• limpar tudo - Reseta usuário atual
• apagar ultima - Desfazer última transação
• zerar - Reinicia TUDO (todos usuários)

🤖 *OU USE COMANDOS DIRETOS:*
• gasto 50 almoço
• vr 30 padaria
• va 80 mercado
• entrada 3000 salário
• +vr 600 / +va 300

Fale comigo naturalmente! 😊`, r.RecentLimit)
}
